package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"theatre_api/config"
	"theatre_api/database"
	"theatre_api/helper"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func InitRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})
}

func performanceChannel(performanceId uint) string {
	return fmt.Sprintf("performance:%d", performanceId)
}

func performanceSnapshot(performanceId uint) ([]byte, error) {
	available, err := helper.AvailableSeats(database.DB, []uint{performanceId})
	if err != nil {
		return nil, err
	}
	takenSeats, err := helper.TakenSeats(database.DB, performanceId)
	if err != nil {
		return nil, err
	}

	return json.Marshal(map[string]any{
		"performanceId":    performanceId,
		"ticketsAvailable": available[performanceId],
		"takenSeats":       takenSeats,
	})
}

// BroadcastPerformance publishes the current availability of a performance so
// connected seat-map clients refresh without polling. Failures only log; a
// reservation never fails because the broadcast did.
func BroadcastPerformance(performanceId uint) {
	if redisClient == nil {
		return
	}

	payload, err := performanceSnapshot(performanceId)
	if err != nil {
		log.Printf("broadcast: snapshot failed for performance %d: %v", performanceId, err)
		return
	}

	if err := redisClient.Publish(context.Background(), performanceChannel(performanceId), payload).Err(); err != nil {
		log.Printf("broadcast: publish failed for performance %d: %v", performanceId, err)
	}
}

// PerformanceSocket streams availability updates for one performance to a
// websocket client. Each connection holds its own redis subscription; closing
// the socket tears the subscription down.
func PerformanceSocket(c *websocket.Conn) {
	defer c.Close()

	rawId := c.Params("performanceId")
	performanceId, err := strconv.ParseUint(rawId, 10, 32)
	if err != nil || redisClient == nil {
		return
	}

	if snapshot, err := performanceSnapshot(uint(performanceId)); err == nil {
		if err := c.WriteMessage(websocket.TextMessage, snapshot); err != nil {
			return
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := redisClient.Subscribe(ctx, performanceChannel(uint(performanceId)))
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range sub.Channel() {
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		}
	}()

	// Drain reads so close frames and pings are processed.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
	cancel()
	<-done
}
