package daemon

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/distatus/battery"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/beambar/beambar/pkg/events"
	"github.com/beambar/beambar/pkg/modules"
	"github.com/beambar/beambar/pkg/types"
	"github.com/beambar/beambar/pkg/version"
)

// snapshotter is implemented by modules that publish a charge snapshot.
type snapshotter interface {
	Snapshot() types.Snapshot
}

func (d *Daemon) getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}

func (d *Daemon) getOutput(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, d.Output())
}

func (d *Daemon) getModules(c *gin.Context) {
	names := make([]string, 0, len(d.mods))
	for _, m := range d.mods {
		names = append(names, m.Name())
	}
	c.IndentedJSON(http.StatusOK, names)
}

func (d *Daemon) findModule(name string) modules.Module {
	for _, m := range d.mods {
		if m.Name() == name {
			return m
		}
	}
	return nil
}

func (d *Daemon) getSnapshot(c *gin.Context) {
	m := d.findModule(c.Param("name"))
	if m == nil {
		err := fmt.Errorf("no such module: %s", c.Param("name"))
		c.IndentedJSON(http.StatusNotFound, err.Error())
		_ = c.AbortWithError(http.StatusNotFound, err)
		return
	}

	s, ok := m.(snapshotter)
	if !ok {
		err := fmt.Errorf("module %s has no snapshot", m.Name())
		c.IndentedJSON(http.StatusNotFound, err.Error())
		_ = c.AbortWithError(http.StatusNotFound, err)
		return
	}

	c.IndentedJSON(http.StatusOK, s.Snapshot())
}

func (d *Daemon) postRefresh(c *gin.Context) {
	m := d.findModule(c.Param("name"))
	if m == nil {
		err := fmt.Errorf("no such module: %s", c.Param("name"))
		c.IndentedJSON(http.StatusNotFound, err.Error())
		_ = c.AbortWithError(http.StatusNotFound, err)
		return
	}

	w, ok := m.(modules.Watched)
	if !ok {
		err := fmt.Errorf("module %s cannot be refreshed", m.Name())
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	if !w.OnFileEvent("") {
		err := fmt.Errorf("module %s failed to sample", m.Name())
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	d.hub.Publish(events.Redraw, m.Name())
	c.IndentedJSON(http.StatusOK, fmt.Sprintf("refreshed %s", m.Name()))
}

func (d *Daemon) getBatteryInfo(c *gin.Context) {
	batteries, err := battery.GetAll()
	if err != nil {
		logrus.Errorf("getBatteryInfo failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	if len(batteries) == 0 {
		logrus.Errorf("no batteries found")
		c.IndentedJSON(http.StatusInternalServerError, "no batteries found")
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no batteries found"))
		return
	}

	bat := batteries[0]
	if bat.State == battery.Discharging {
		bat.ChargeRate = -bat.ChargeRate
	}

	c.IndentedJSON(http.StatusOK, types.BatteryInfo{
		State:         fmt.Sprint(bat.State),
		Current:       bat.Current,
		Full:          bat.Full,
		Design:        bat.Design,
		ChargeRate:    bat.ChargeRate,
		Voltage:       bat.Voltage,
		DesignVoltage: bat.DesignVoltage,
	})
}
