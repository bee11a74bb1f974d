package main

import (
	"bytes"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_traffic_requests_total",
		Help: "Запросы генератора к порталу",
	}, []string{"route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portal_traffic_request_duration_seconds",
		Help:    "Длительность запросов генератора в секундах",
		Buckets: []float64{0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"route"})
)

// Маршруты, которые открывает пекарня при обычной работе с порталом.
var routes = []string{
	"/orders",
	"/orders/new",
	"/orders/1/edit",
	"/payments/1",
	"/ping",
}

type loginResponse struct {
	Token string `json:"token"`
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func login(client *http.Client, baseURL, email string) (string, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": "demo"})
	if err != nil {
		return "", err
	}

	resp, err := client.Post(baseURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func hit(client *http.Client, baseURL, token, route string) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequest(http.MethodGet, baseURL+route, nil)
	if err != nil {
		requestsTotal.WithLabelValues(route, "error").Inc()
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(route, "error").Inc()
		return
	}
	resp.Body.Close()

	requestsTotal.WithLabelValues(route, strconv.Itoa(resp.StatusCode)).Inc()
}

func main() {
	baseURL := getenv("PORTAL_URL", "http://localhost:8080")
	email := getenv("PORTAL_EMAIL", "panaderia@example.com")
	client := &http.Client{Timeout: 10 * time.Second}

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":2112", nil); err != nil {
			log.Fatalf("metrics server: %v", err)
		}
	}()

	var token string
	for {
		if token == "" {
			t, err := login(client, baseURL, email)
			if err != nil {
				log.Printf("login: %v", err)
				time.Sleep(5 * time.Second)
				continue
			}
			token = t
		}

		hit(client, baseURL, token, routes[rand.Intn(len(routes))])
		time.Sleep(time.Duration(200+rand.Intn(800)) * time.Millisecond)
	}
}
