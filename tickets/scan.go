package tickets

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"

	"perfnight/db"
	"perfnight/live"
	"perfnight/models"
	"perfnight/rdx"
	"perfnight/seating"
	"perfnight/utils"
)

type scanRequest struct {
	SeatNumber string `json:"seatNumber"`
	QRPayload  string `json:"qrPayload,omitempty"`
}

// ScanTicket records one door check-in. Each seat scans at most once; the
// Redis set answers the duplicate check, the Mongo log is authoritative.
func ScanTicket(hub *live.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req scanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request")
			return
		}
		if req.SeatNumber == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Missing seat number")
			return
		}

		// When the scanner sends the full QR payload, the signature must
		// check out and the scanned seat must belong to the booking.
		if req.QRPayload != "" {
			_, seats, err := VerifyQRPayload(req.QRPayload)
			if err != nil {
				utils.RespondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			valid := false
			for _, label := range seating.ExpandRanges(seats) {
				if label == req.SeatNumber {
					valid = true
					break
				}
			}
			if !valid {
				utils.RespondWithError(w, http.StatusBadRequest, "Seat does not belong to this ticket")
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		added, err := rdx.AddScan(ctx, req.SeatNumber)
		if err != nil {
			log.Println("redis scan set:", err)
			// fall through to Mongo; Redis being down must not block check-in
			added, err = notYetScanned(ctx, req.SeatNumber)
			if err != nil {
				utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check scan state")
				return
			}
		}
		if !added {
			utils.RespondWithError(w, http.StatusBadRequest, "Seat already scanned")
			return
		}

		scan := models.ScannedTicket{
			ScanID:     uuid.NewString(),
			SeatNumber: req.SeatNumber,
			ScannedAt:  time.Now().Unix(),
		}
		if _, err := db.ScannedTicketsCollection.InsertOne(ctx, scan); err != nil {
			if rerr := rdx.RemoveScan(ctx, req.SeatNumber); rerr != nil {
				log.Println("redis scan rollback:", rerr)
			}
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save scanned ticket")
			return
		}

		hub.Broadcast(live.EventTicketScanned, scan)

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success": true,
			"message": "Ticket scanned successfully",
			"data":    scan,
		})
	}
}

func notYetScanned(ctx context.Context, seat string) (bool, error) {
	count, err := db.ScannedTicketsCollection.CountDocuments(ctx, bson.M{"seatNumber": seat})
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// GetScannedTickets lists every scan with the plain seat numbers alongside.
func GetScannedTickets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.ScannedTicketsCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	var scans []models.ScannedTicket
	if err := cur.All(ctx, &scans); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode scans")
		return
	}

	seatNumbers := make([]string, 0, len(scans))
	for _, s := range scans {
		seatNumbers = append(seatNumbers, s.SeatNumber)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":     true,
		"data":        scans,
		"seatNumbers": seatNumbers,
		"count":       len(scans),
	})
}

// CheckScanned reports whether a seat has already been checked in.
func CheckScanned(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.SeatNumber == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing seat number")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	scanned, err := rdx.IsScanned(ctx, req.SeatNumber)
	if err != nil {
		log.Println("redis scan check:", err)
		notScanned, merr := notYetScanned(ctx, req.SeatNumber)
		if merr != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check scan state")
			return
		}
		scanned = !notScanned
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"exists":  scanned,
	})
}
