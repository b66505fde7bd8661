package metasys

import (
	"time"
)

// Page represents one server page of a collection resource.
//
// Items carries the page contents in server order. Next holds the relative
// URL of the following page and is empty on the last page. Total, when the
// server reports it, is the size of the whole collection, not of this page.
type Page[T any] struct {
	Items []T    `json:"items"          yaml:"items"`
	Next  string `json:"next,omitempty" yaml:"next,omitempty"`
	Total int    `json:"total"          yaml:"total"`
}

// Alarm represents an alarm raised by a device or object.
type Alarm struct {
	ID             string    `json:"id"             yaml:"id"`
	ItemReference  string    `json:"itemReference"  yaml:"itemReference"`
	Name           string    `json:"name"           yaml:"name"`
	Message        string    `json:"message"        yaml:"message"`
	Priority       int       `json:"priority"       yaml:"priority"`
	Type           string    `json:"type"           yaml:"type"`
	TriggerValue   string    `json:"triggerValue"   yaml:"triggerValue"`
	IsAcknowledged bool      `json:"isAcknowledged" yaml:"isAcknowledged"`
	IsDiscarded    bool      `json:"isDiscarded"    yaml:"isDiscarded"`
	CreationTime   time.Time `json:"creationTime"   yaml:"creationTime"`
	Self           string    `json:"self"           yaml:"self"`
}

// NetworkDevice represents a device on the building network, including
// supervisory engines.
type NetworkDevice struct {
	ID              string `json:"id"              yaml:"id"`
	ItemReference   string `json:"itemReference"   yaml:"itemReference"`
	Name            string `json:"name"            yaml:"name"`
	Description     string `json:"description"     yaml:"description"`
	Type            string `json:"type"            yaml:"type"`
	FirmwareVersion string `json:"firmwareVersion" yaml:"firmwareVersion"`
	IPAddress       string `json:"ipAddress"       yaml:"ipAddress"`
	Self            string `json:"self"            yaml:"self"`
}

// ObjectEntry represents a point or object in the object hierarchy.
type ObjectEntry struct {
	ID            string `json:"id"            yaml:"id"`
	ItemReference string `json:"itemReference" yaml:"itemReference"`
	Name          string `json:"name"          yaml:"name"`
	Type          string `json:"type"          yaml:"type"`
	Self          string `json:"self"          yaml:"self"`
}

// Audit represents one entry in the audit trail.
type Audit struct {
	ID              string    `json:"id"              yaml:"id"`
	CreationTime    time.Time `json:"creationTime"    yaml:"creationTime"`
	ActionType      string    `json:"actionType"      yaml:"actionType"`
	Description     string    `json:"description"     yaml:"description"`
	User            string    `json:"user"            yaml:"user"`
	ObjectReference string    `json:"objectReference" yaml:"objectReference"`
	Self            string    `json:"self"            yaml:"self"`
}

// Equipment represents a piece of building equipment (an AHU, a chiller, ...).
type Equipment struct {
	ID            string `json:"id"            yaml:"id"`
	ItemReference string `json:"itemReference" yaml:"itemReference"`
	Name          string `json:"name"          yaml:"name"`
	Type          string `json:"type"          yaml:"type"`
	Self          string `json:"self"          yaml:"self"`
}

// Space represents a building, floor, or room.
type Space struct {
	ID            string `json:"id"            yaml:"id"`
	ItemReference string `json:"itemReference" yaml:"itemReference"`
	Name          string `json:"name"          yaml:"name"`
	Type          string `json:"type"          yaml:"type"`
	Self          string `json:"self"          yaml:"self"`
}

// TrendedAttribute names an attribute of an object for which the server
// records samples.
type TrendedAttribute struct {
	Attribute string `json:"attribute" yaml:"attribute"`
	Name      string `json:"name"      yaml:"name"`
	Samples   string `json:"samples"   yaml:"samples"`
}

// Sample is one recorded value of a trended attribute.
type Sample struct {
	Timestamp  time.Time   `json:"timestamp"  yaml:"timestamp"`
	Value      SampleValue `json:"value"      yaml:"value"`
	IsReliable bool        `json:"isReliable" yaml:"isReliable"`
	Self       string      `json:"self"       yaml:"self"`
}

// SampleValue is the measured value with its unit of presentation.
type SampleValue struct {
	Value float64 `json:"value" yaml:"value"`
	Units string  `json:"units" yaml:"units"`
}
