package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"perfnight/db"
	"perfnight/live"
	"perfnight/models"
	"perfnight/utils"
)

const oneSignalURL = "https://onesignal.com/api/v1/notifications"

var pushClient = &http.Client{Timeout: 10 * time.Second}

// sendPush delivers a notification through OneSignal. Credentials come
// from ONESIGNAL_APP_ID and ONESIGNAL_API_KEY; when either is missing the
// push is skipped and only logged, so local setups work without an account.
func sendPush(ctx context.Context, n models.Notification) {
	appID := os.Getenv("ONESIGNAL_APP_ID")
	apiKey := os.Getenv("ONESIGNAL_API_KEY")
	if appID == "" || apiKey == "" {
		log.Println("OneSignal credentials not set; skipping push:", n.Description)
		return
	}

	body, err := json.Marshal(map[string]any{
		"app_id":            appID,
		"included_segments": []string{"All"},
		"headings":          map[string]string{"en": n.Type},
		"contents":          map[string]string{"en": n.Description},
	})
	if err != nil {
		log.Println("marshal push payload:", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, oneSignalURL, bytes.NewReader(body))
	if err != nil {
		log.Println("build push request:", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+apiKey)

	resp, err := pushClient.Do(req)
	if err != nil {
		log.Println("send push:", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		log.Println("push rejected with status", resp.StatusCode)
	}
}

// InsertNotification stores an announcement, pushes it to subscribed
// devices and broadcasts it to connected clients. Push failures do not
// fail the request.
func InsertNotification(hub *live.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var n models.Notification
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if n.Description == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Description is required")
			return
		}
		if n.Type == "" {
			n.Type = "announcement"
		}
		n.CreatedAt = time.Now().Unix()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.NotificationsCollection.InsertOne(ctx, n); err != nil {
			log.Println("insert notification:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save notification")
			return
		}

		go sendPush(context.Background(), n)
		hub.Broadcast(live.EventNotification, n)

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success": true,
			"message": "Notification created successfully",
			"data":    n,
		})
	}
}

// RetrieveNotifications returns stored announcements, newest first.
func RetrieveNotifications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := db.NotificationsCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("retrieve notifications:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}
	defer cur.Close(ctx)

	notifications := []models.Notification{}
	if err := cur.All(ctx, &notifications); err != nil {
		log.Println("decode notifications:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode notifications")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": notifications})
}
