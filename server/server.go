// Package server is the built-in demo backend. It speaks the same four
// endpoints as the real annotation backend but serves synthetic waveforms,
// so segview can be tried without a downloaded dataset.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/andareed/segview/client"
)

// Backend holds the demo dataset: a fixed segment list, a label set, and
// per-segment label assignments guarded by a mutex.
type Backend struct {
	segmentIDs  []int
	classes     []client.Class
	customPlots int

	mu       sync.Mutex
	assigned map[int]map[int]bool // segment id -> class id set
}

// New builds a demo backend with n synthetic segments and one custom plot
// per entry of customPlots.
func New(n int, customPlots int) *Backend {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return &Backend{
		segmentIDs: ids,
		classes: []client.Class{
			{ID: 1, Name: "ok"},
			{ID: 2, Name: "low_snr"},
			{ID: 3, Name: "noise"},
			{ID: 4, Name: "clipped"},
		},
		customPlots: customPlots,
		assigned:    make(map[int]map[int]bool),
	}
}

// Router wires the four endpoints.
func (b *Backend) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/get_classes", b.handleClasses).Methods(http.MethodPost)
	r.HandleFunc("/get_elements", b.handleElements).Methods(http.MethodPost)
	r.HandleFunc("/get_data", b.handleData).Methods(http.MethodPost)
	r.HandleFunc("/toggle_class_id", b.handleToggle).Methods(http.MethodPost)
	return r
}

// Serve starts the backend on a loopback port and returns its base URL.
func (b *Backend) Serve() (string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("demo backend listen: %w", err)
	}
	go func() {
		if err := http.Serve(ln, b.Router()); err != nil {
			log.Printf("demo backend stopped: %v", err)
		}
	}()
	return "http://" + ln.Addr().String(), nil
}

func (b *Backend) handleClasses(w http.ResponseWriter, r *http.Request) {
	log.Printf("demo: get_classes req=%s", r.Header.Get("X-Request-ID"))
	writeJSON(w, client.ClassesResponse{Classes: b.classes})
}

func (b *Backend) handleElements(w http.ResponseWriter, r *http.Request) {
	log.Printf("demo: get_elements req=%s", r.Header.Get("X-Request-ID"))
	writeJSON(w, client.ElementsResponse{SegmentIDs: b.segmentIDs})
}

func (b *Backend) handleData(w http.ResponseWriter, r *http.Request) {
	var req client.DataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("demo: get_data seg=%d filtered=%v req=%s", req.SegID, req.FilteredRemResp, r.Header.Get("X-Request-ID"))

	if !b.knownSegment(req.SegID) {
		http.Error(w, fmt.Sprintf("unknown segment %d", req.SegID), http.StatusBadRequest)
		return
	}

	plots := make([]client.PlotPayload, 0, 3+b.customPlots)
	for ch, name := range []string{"BHZ", "BHN", "BHE"} {
		p := b.waveform(req.SegID, ch, name, req.FilteredRemResp)
		p = window(p, zoomAt(req.Zooms, ch))
		plots = append(plots, p)
	}
	for i := 0; i < b.customPlots; i++ {
		p := b.spectrum(req.SegID, i)
		p = window(p, zoomAt(req.Zooms, 3+i))
		plots = append(plots, p)
	}

	writeJSON(w, client.DataResponse{
		Plots:    plots,
		Metadata: b.metadata(req.SegID),
		ClassIDs: b.classIDs(req.SegID),
	})
}

func (b *Backend) handleToggle(w http.ResponseWriter, r *http.Request) {
	var req client.ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("demo: toggle_class_id class=%d seg=%d req=%s", req.ClassID, req.SegmentID, r.Header.Get("X-Request-ID"))

	if !b.knownSegment(req.SegmentID) || !b.knownClass(req.ClassID) {
		http.Error(w, "unknown segment or class", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	set := b.assigned[req.SegmentID]
	if set == nil {
		set = make(map[int]bool)
		b.assigned[req.SegmentID] = set
	}
	if set[req.ClassID] {
		delete(set, req.ClassID)
	} else {
		set[req.ClassID] = true
	}
	b.mu.Unlock()

	writeJSON(w, client.ToggleResponse{
		Classes:         b.classes,
		SegmentClassIDs: b.classIDs(req.SegmentID),
	})
}

// waveform builds a deterministic decaying sine burst with noise. Seeding
// from the segment id keeps repeated fetches identical.
func (b *Backend) waveform(segID, channel int, name string, filtered bool) client.PlotPayload {
	const samples = 1200
	const dxMillis = 25.0 // 40 Hz
	x0 := demoEpochMillis(segID)

	rng := rand.New(rand.NewSource(int64(segID*10 + channel)))
	freq := 0.5 + rng.Float64()*4
	onset := samples / 4
	y := make([]float64, samples)
	for i := range y {
		v := (rng.Float64() - 0.5) * 0.2
		if i >= onset {
			t := float64(i-onset) * dxMillis / 1000
			v += math.Sin(2*math.Pi*freq*t) * math.Exp(-t/3)
		}
		y[i] = v
	}
	if filtered {
		y = smooth(y)
	}

	title := fmt.Sprintf("Seg %d - %s", segID, name)
	if filtered {
		title += " (filtered)"
	}
	return client.PlotPayload{Title: title, X0: x0, Dx: dxMillis, Y: y}
}

func (b *Backend) spectrum(segID, n int) client.PlotPayload {
	const bins = 256
	rng := rand.New(rand.NewSource(int64(segID*100 + n)))
	peak := 2 + rng.Float64()*10
	y := make([]float64, bins)
	for i := range y {
		f := float64(i) * 20.0 / bins
		y[i] = 1/(1+(f-peak)*(f-peak)) + rng.Float64()*0.05
	}
	return client.PlotPayload{
		Title: fmt.Sprintf("Seg %d - custom %d", segID, n),
		X0:    0,
		Dx:    20.0 / bins,
		Y:     y,
	}
}

func (b *Backend) metadata(segID int) []client.MetaPair {
	start := demoEpochMillis(segID)
	return []client.MetaPair{
		{Key: "segment_id", Value: fmt.Sprintf("%d", segID)},
		{Key: "station", Value: "GE.DEMO"},
		{Key: "event_date", Value: fmt.Sprintf("[__DATE__]%g", start)},
		{Key: "arrival_time", Value: fmt.Sprintf("[__TIME__]%g", start)},
		{Key: "sample_rate", Value: "40.0"},
	}
}

func (b *Backend) classIDs(segID int) []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]int, 0, len(b.assigned[segID]))
	for _, c := range b.classes {
		if b.assigned[segID][c.ID] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func (b *Backend) knownSegment(id int) bool {
	for _, s := range b.segmentIDs {
		if s == id {
			return true
		}
	}
	return false
}

func (b *Backend) knownClass(id int) bool {
	for _, c := range b.classes {
		if c.ID == id {
			return true
		}
	}
	return false
}

// window crops a payload to a zoom range so the client gets data already
// windowed to the visible range, not a client-side crop.
func window(p client.PlotPayload, z client.ZoomRange) client.PlotPayload {
	if !z.Set || p.Dx <= 0 || len(p.Y) == 0 {
		return p
	}
	lo := int(math.Ceil((z.Start - p.X0) / p.Dx))
	hi := int(math.Floor((z.End - p.X0) / p.Dx))
	if lo < 0 {
		lo = 0
	}
	if hi >= len(p.Y) {
		hi = len(p.Y) - 1
	}
	if lo > hi {
		return client.PlotPayload{Title: p.Title, X0: z.Start, Dx: p.Dx, Y: nil}
	}
	return client.PlotPayload{
		Title: p.Title,
		X0:    p.X0 + float64(lo)*p.Dx,
		Dx:    p.Dx,
		Y:     append([]float64(nil), p.Y[lo:hi+1]...),
	}
}

func zoomAt(zooms []client.ZoomRange, i int) client.ZoomRange {
	if i < 0 || i >= len(zooms) {
		return client.ZoomRange{}
	}
	return zooms[i]
}

func smooth(y []float64) []float64 {
	out := make([]float64, len(y))
	for i := range y {
		sum, n := 0.0, 0
		for j := i - 2; j <= i+2; j++ {
			if j >= 0 && j < len(y) {
				sum += y[j]
				n++
			}
		}
		out[i] = sum / float64(n)
	}
	return out
}

// demoEpochMillis spaces demo segments one minute apart starting at a fixed
// instant, so tagged date/time metadata renders something sensible.
func demoEpochMillis(segID int) float64 {
	const base = 1500000000000 // 2017-07-14T02:40:00Z
	return base + float64(segID)*60000
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("demo: encode response: %v", err)
	}
}
