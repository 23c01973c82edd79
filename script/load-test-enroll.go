package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/auth"
	timeProvider "github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/time"
)

// TestResult contains metrics for a single enrollment request
type TestResult struct {
	UserID       uint64
	StatusCode   int
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests int
	StatusCounts  map[int]int
	ErrorCounts   map[string]int
	ResponseTimes []time.Duration
	TotalTime     time.Duration
}

type client struct {
	baseURL string
	http    *http.Client
}

func (c *client) post(path, token string, body any, out any) (int, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

type registeredUser struct {
	ID    uint64
	Token string
}

// Fires one enrollment per user at a single activity at the same instant and checks
// that exactly min(users, seats) of them win.
func main() {
	users := flag.Int("users", 50, "Number of users racing for the seats")
	seats := flag.Int("seats", 5, "Seats on the contended activity")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", os.Getenv("CL_AUTH_SECRET"), "Token secret, used to mint the admin token")
	issuer := flag.String("issuer", "community-ledger", "Token issuer")
	adminID := flag.Uint64("admin", 1, "User ID carried by the admin token")
	flag.Parse()

	if *secret == "" {
		fmt.Println("A token secret is required (-secret or CL_AUTH_SECRET)")
		os.Exit(2)
	}

	api := &client{baseURL: *baseURL, http: &http.Client{Timeout: 10 * time.Second}}
	tokens := auth.NewTokenService(*secret, *issuer, time.Hour, timeProvider.NewRealTimeProvider())
	adminToken, err := tokens.Issue(*adminID, auth.RoleAdmin)
	if err != nil {
		fmt.Printf("Failed to mint admin token: %v\n", err)
		os.Exit(1)
	}

	// Contended activity
	var activity struct {
		ID uint64 `json:"id"`
	}
	status, err := api.post("/admin/activities", adminToken, map[string]any{
		"title":       fmt.Sprintf("Load Test %d", time.Now().UnixNano()),
		"category":    "sport",
		"scheduledAt": time.Now().Add(72 * time.Hour).UTC(),
		"location":    "Main Hall",
		"totalSeats":  *seats,
	}, &activity)
	if err != nil || status != http.StatusCreated {
		fmt.Printf("Failed to create activity: status %d, error %v\n", status, err)
		os.Exit(1)
	}

	// Register the racers
	runID := time.Now().UnixNano()
	racers := make([]registeredUser, 0, *users)
	for i := 0; i < *users; i++ {
		var created struct {
			User struct {
				ID uint64 `json:"id"`
			} `json:"user"`
			Token string `json:"token"`
		}
		name := fmt.Sprintf("racer-%d-%d", runID, i)
		status, err := api.post("/users", "", map[string]string{
			"username": name,
			"email":    name + "@load.test",
		}, &created)
		if err != nil || status != http.StatusCreated {
			fmt.Printf("Failed to create user %d: status %d, error %v\n", i, status, err)
			os.Exit(1)
		}
		racers = append(racers, registeredUser{ID: created.User.ID, Token: created.Token})
	}

	fmt.Printf("Activity %d with %d seats, %d concurrent enrollments\n", activity.ID, *seats, *users)

	stats := &TestStats{
		TotalRequests: *users,
		StatusCounts:  make(map[int]int),
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *users),
	}
	results := make(chan TestResult, *users)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for _, racer := range racers {
		wg.Add(1)
		go func(racer registeredUser) {
			defer wg.Done()
			<-start

			began := time.Now()
			status, err := api.post(fmt.Sprintf("/activities/%d/enrollments", activity.ID), racer.Token, nil, nil)
			results <- TestResult{UserID: racer.ID, StatusCode: status, ResponseTime: time.Since(began), Error: err}
		}(racer)
	}

	startTime := time.Now()
	close(start)
	wg.Wait()
	close(results)
	stats.TotalTime = time.Since(startTime)

	for result := range results {
		if result.Error != nil {
			stats.ErrorCounts[result.Error.Error()]++
			continue
		}
		stats.StatusCounts[result.StatusCode]++
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	}

	if !printResults(stats, min(*users, *seats)) {
		os.Exit(1)
	}
}

func printResults(stats *TestStats, expectedWinners int) bool {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	percentile := func(p int) time.Duration {
		if len(sorted) == 0 {
			return 0
		}
		return sorted[len(sorted)*p/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- STATUS CODES -----------------")
	codes := make([]int, 0, len(stats.StatusCounts))
	for code := range stats.StatusCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Printf("%d %-22s: %d\n", code, http.StatusText(code), stats.StatusCounts[code])
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50 Response:        %v\n", percentile(50))
	fmt.Printf("P90 Response:        %v\n", percentile(90))
	fmt.Printf("P99 Response:        %v\n", percentile(99))

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	winners := stats.StatusCounts[http.StatusCreated]
	retryable := stats.StatusCounts[http.StatusServiceUnavailable]

	fmt.Println("\n================= CONCLUSION =================")
	ok := winners <= expectedWinners && (winners == expectedWinners || retryable > 0)
	switch {
	case winners > expectedWinners:
		fmt.Printf("FAIL: %d enrollments succeeded for %d seats (overbooked)\n", winners, expectedWinners)
	case winners < expectedWinners && retryable > 0:
		fmt.Printf("OK: %d of %d seats taken, %d callers told to retry\n", winners, expectedWinners, retryable)
	case winners < expectedWinners:
		fmt.Printf("FAIL: only %d of %d seats taken and nobody was told to retry\n", winners, expectedWinners)
	default:
		fmt.Printf("OK: exactly %d enrollments succeeded\n", winners)
	}
	fmt.Println("================================================")
	return ok
}
