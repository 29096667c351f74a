package sales

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"perfnight/live"
	"perfnight/models"
	"perfnight/seating"
	"perfnight/tickets"
	"perfnight/utils"
)

// Handler owns the booking flow: the record store is the single source of
// truth for which seats are taken, and the reserved set is recomputed from
// it on every read. There is no seat hold; the conflict check runs against
// a fresh reserved set immediately before insert, and the fetch-to-insert
// window remains the race window.
type Handler struct {
	store  Store
	hub    *live.Hub
	layout *seating.Layout
}

func NewHandler(store Store, hub *live.Hub) *Handler {
	return &Handler{store: store, hub: hub, layout: seating.DefaultLayout()}
}

type salesRequest struct {
	Records []models.TicketSale `json:"records"`
}

// groupRecords merges per-seat rows that belong to the same booking into
// one record each, preserving first-seen order.
func groupRecords(records []models.TicketSale) []models.TicketSale {
	var order []string
	grouped := make(map[string]*models.TicketSale)
	for _, r := range records {
		key := r.GroupKey()
		g, ok := grouped[key]
		if !ok {
			merged := r
			merged.Seats = nil
			grouped[key] = &merged
			order = append(order, key)
			g = &merged
		}
		g.Seats = append(g.Seats, r.Seats...)
	}

	out := make([]models.TicketSale, 0, len(order))
	for _, key := range order {
		out = append(out, *grouped[key])
	}
	return out
}

// Retrieve returns every persisted sales record.
func (h *Handler) Retrieve(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	records, err := h.store.RetrieveAll(ctx)
	if err != nil {
		log.Println("retrieve sales:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve sales records")
		return
	}
	if records == nil {
		records = []models.TicketSale{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": records})
}

// Insert groups, validates, conflict-checks and persists a submission,
// then signals every client to re-fetch. A conflict rejects the whole
// submission with the overlapping seat labels and leaves the store
// untouched.
func (h *Handler) Insert(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req salesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Records) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No records submitted")
		return
	}

	groups := groupRecords(req.Records)
	for i := range groups {
		if err := groups[i].Normalize(); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// Re-derive the reserved set from the store right before inserting;
	// the client's view may be arbitrarily stale.
	existing, err := h.store.RetrieveAll(ctx)
	if err != nil {
		log.Println("retrieve for conflict check:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check seat availability")
		return
	}
	reserved := seating.ReservedSet(rangeLists(existing))

	var proposed []string
	for _, g := range groups {
		proposed = append(proposed, seating.ExpandRanges(g.Seats)...)
	}
	if overlap := seating.Conflict(proposed, reserved); len(overlap) != 0 {
		utils.RespondWithJSON(w, http.StatusConflict, utils.M{
			"success":  false,
			"error":    "Some seats are already booked",
			"conflict": overlap,
		})
		return
	}

	count, err := h.store.Count(ctx)
	if err != nil {
		log.Println("count sales:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to number booking")
		return
	}
	now := time.Now()
	for i := range groups {
		if groups[i].BookingNo == "" {
			groups[i].BookingNo = fmt.Sprintf("ECSS/MC%d/%03d", now.Year(), count+int64(i)+1)
		}
		if groups[i].Time == "" {
			groups[i].Time = now.Format("02/01/2006 15:04:05")
		}
		groups[i].CreatedAt = now.Unix()
	}

	if err := h.store.Insert(ctx, groups); err != nil {
		log.Println("insert sales:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save sales records")
		return
	}

	h.hub.Broadcast(live.EventReservationUpdated, utils.M{"message": "Reservation updated successfully"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "New sales records created successfully",
		"data":    groups,
	})
}

// Availability reports the hall-wide and per-location seat availability,
// always recomputed from the full record set.
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	records, err := h.store.RetrieveAll(ctx)
	if err != nil {
		log.Println("retrieve for availability:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load availability")
		return
	}
	reserved := seating.ReservedSet(rangeLists(records))

	total := len(h.layout.AllSeatLabels())
	available := len(seating.Available(h.layout, reserved))

	locations := make(map[string]seating.LocationStats)
	for loc, stats := range seating.Breakdown(h.layout, reserved) {
		locations[string(loc)] = stats
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"totalSeats": total,
		"available":  available,
		"reserved":   total - available,
		"locations":  locations,
	})
}

type allocateRequest struct {
	Count    int    `json:"count"`
	Location string `json:"location,omitempty"`
}

// Allocate picks the next N available seats in scan order, optionally
// restricted to one location. Fewer seats than asked is not an error; the
// response carries both numbers so callers can tell.
func (h *Handler) Allocate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req allocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Count <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Count must be positive")
		return
	}
	var loc seating.Location
	if req.Location != "" {
		parsed, ok := seating.ParseLocation(req.Location)
		if !ok {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown location")
			return
		}
		loc = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	records, err := h.store.RetrieveAll(ctx)
	if err != nil {
		log.Println("retrieve for allocation:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load availability")
		return
	}
	reserved := seating.ReservedSet(rangeLists(records))

	seats := seating.Allocate(h.layout, reserved, req.Count, loc)
	if seats == nil {
		seats = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":   true,
		"requested": req.Count,
		"allocated": len(seats),
		"seats":     seats,
	})
}

// GenerateReceipt renders the receipt PDF for a submission without
// touching the store; the client calls it after a successful insert.
func (h *Handler) GenerateReceipt(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req salesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Records) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No records submitted")
		return
	}

	groups := groupRecords(req.Records)
	for i := range groups {
		if err := groups[i].Normalize(); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	pdf, err := tickets.GenerateReceiptPDF(groups)
	if err != nil {
		log.Println("generate receipt:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt.pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func rangeLists(records []models.TicketSale) [][]string {
	lists := make([][]string, 0, len(records))
	for _, r := range records {
		lists = append(lists, r.Seats)
	}
	return lists
}
