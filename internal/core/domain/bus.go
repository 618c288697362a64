package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexString decodes a JSON string or number into a string.
// Transit feeds report route and stop numbers either way.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the decoded text.
func (f FlexString) String() string {
	return string(f)
}

// BusStop is a stop candidate from a bus stop search.
type BusStop struct {
	NodeID string `json:"nodeId"`

	// NodeName is the stop name; may be empty.
	NodeName string `json:"nodeNm,omitempty"`

	// NodeNo is the public stop number; may be empty.
	NodeNo FlexString `json:"nodeNo,omitempty"`
}

// BusArrival is one upcoming bus at a stop.
type BusArrival struct {
	RouteNo FlexString `json:"routeNo"`

	// EndNodeName is the terminus, shown as the direction.
	EndNodeName string `json:"endNodeNm,omitempty"`

	// ArrTimeMin is minutes until arrival; nil when unknown.
	ArrTimeMin *int `json:"arrTimeMin"`
}

// BusArrivals is the arrivals lookup reply for one stop.
type BusArrivals struct {
	// ETAMin is the soonest arrival in minutes; nil when unknown.
	ETAMin   *int         `json:"eta_min"`
	Arrivals []BusArrival `json:"arrivals"`
}
