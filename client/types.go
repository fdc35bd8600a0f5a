package client

import (
	"encoding/json"
	"fmt"
)

// Class is one label in the dataset-wide label set.
type Class struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ZoomRange is one plot's visible range. The wire form is a two element
// array, [start,end] when set and [null,null] when unset.
type ZoomRange struct {
	Start float64
	End   float64
	Set   bool
}

func (z ZoomRange) MarshalJSON() ([]byte, error) {
	if !z.Set {
		return []byte("[null,null]"), nil
	}
	return json.Marshal([2]float64{z.Start, z.End})
}

func (z *ZoomRange) UnmarshalJSON(data []byte) error {
	var pair [2]*float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("zoom range: %w", err)
	}
	// A range is only a range when both endpoints are present.
	if pair[0] == nil || pair[1] == nil {
		*z = ZoomRange{}
		return nil
	}
	*z = ZoomRange{Start: *pair[0], End: *pair[1], Set: true}
	return nil
}

// PlotPayload is one plot's data as sent by the backend:
// [title, x0, dx, [y0, y1, ...]].
type PlotPayload struct {
	Title string
	X0    float64
	Dx    float64
	Y     []float64
}

func (p *PlotPayload) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("plot payload: %w", err)
	}
	if len(parts) != 4 {
		return fmt.Errorf("plot payload: want 4 elements, got %d", len(parts))
	}
	if err := json.Unmarshal(parts[0], &p.Title); err != nil {
		return fmt.Errorf("plot title: %w", err)
	}
	if err := json.Unmarshal(parts[1], &p.X0); err != nil {
		return fmt.Errorf("plot x0: %w", err)
	}
	if err := json.Unmarshal(parts[2], &p.Dx); err != nil {
		return fmt.Errorf("plot dx: %w", err)
	}
	if err := json.Unmarshal(parts[3], &p.Y); err != nil {
		return fmt.Errorf("plot y values: %w", err)
	}
	return nil
}

func (p PlotPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]any{p.Title, p.X0, p.Dx, p.Y})
}

// MetaPair is one metadata row. Values arrive as arbitrary JSON scalars;
// non-strings are kept in their literal text form for display.
type MetaPair struct {
	Key   string
	Value string
}

func (m *MetaPair) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("metadata pair: %w", err)
	}
	if err := json.Unmarshal(pair[0], &m.Key); err != nil {
		return fmt.Errorf("metadata key: %w", err)
	}
	var s string
	if err := json.Unmarshal(pair[1], &s); err == nil {
		m.Value = s
		return nil
	}
	m.Value = string(pair[1])
	return nil
}

func (m MetaPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{m.Key, m.Value})
}

// ClassesResponse is the /get_classes reply.
type ClassesResponse struct {
	Classes []Class `json:"classes"`
}

// ElementsResponse is the /get_elements reply.
type ElementsResponse struct {
	SegmentIDs []int `json:"segment_ids"`
}

// DataRequest is the /get_data body.
type DataRequest struct {
	SegID           int         `json:"seg_id"`
	FilteredRemResp bool        `json:"filtered_rem_resp"`
	Zooms           []ZoomRange `json:"zooms"`
}

// DataResponse is the /get_data reply: everything the viewer shows for one
// segment. The client never merges it with prior state; each navigation
// replaces the whole frame.
type DataResponse struct {
	Plots    []PlotPayload `json:"plots"`
	Metadata []MetaPair    `json:"metadata"`
	ClassIDs []int         `json:"class_ids"`
}

// ToggleRequest is the /toggle_class_id body.
type ToggleRequest struct {
	ClassID   int `json:"class_id"`
	SegmentID int `json:"segment_id"`
}

// ToggleResponse is the /toggle_class_id reply. Both sets are authoritative
// and replace local state wholesale.
type ToggleResponse struct {
	Classes         []Class `json:"classes"`
	SegmentClassIDs []int   `json:"segment_class_ids"`
}
