package client

import (
	"encoding/json"

	pkgerrors "github.com/pkg/errors"

	"github.com/beambar/beambar/pkg/types"
)

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get daemon version")
	}
	return parseStringResponse(ret)
}

// GetOutput returns the last rendered bar line.
func (c *Client) GetOutput() (string, error) {
	ret, err := c.Get("/output")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get bar output")
	}
	return parseStringResponse(ret)
}

func (c *Client) GetModules() ([]string, error) {
	ret, err := c.Get("/modules")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to list modules")
	}
	var names []string
	if err := json.Unmarshal([]byte(ret), &names); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal module list")
	}
	return names, nil
}

// GetSnapshot returns a module's current charge snapshot.
func (c *Client) GetSnapshot(module string) (types.Snapshot, error) {
	var snap types.Snapshot
	ret, err := c.Get("/modules/" + module + "/snapshot")
	if err != nil {
		return snap, pkgerrors.Wrapf(err, "failed to get %s snapshot", module)
	}
	if err := json.Unmarshal([]byte(ret), &snap); err != nil {
		return snap, pkgerrors.Wrapf(err, "failed to unmarshal snapshot")
	}
	return snap, nil
}

// Refresh forces a module to re-sample immediately.
func (c *Client) Refresh(module string) (string, error) {
	ret, err := c.Post("/modules/"+module+"/refresh", "")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to refresh %s", module)
	}
	return parseStringResponse(ret)
}

func (c *Client) GetBatteryInfo() (*types.BatteryInfo, error) {
	ret, err := c.Get("/battery-info")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get battery info")
	}
	info := &types.BatteryInfo{}
	if err := json.Unmarshal([]byte(ret), info); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal battery info")
	}
	return info, nil
}

// parseStringResponse decodes a JSON-encoded string body.
func parseStringResponse(body string) (string, error) {
	var s string
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to unmarshal response %q", body)
	}
	return s, nil
}
