package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	targetHost = "http://localhost:8081" // e2e окружение
	rps        = 5
	duration   = 1 * time.Minute
)

// Нагрузочный сценарий: поток webhook-событий pull_request по разным PR.
// Часть событий попадает в несуществующие репозитории и должна быстро
// отбиваться как "не участвует".

type webhookPayload struct {
	Action      string `json:"action"`
	Number      int    `json:"number"`
	PullRequest struct {
		HtmlURL string `json:"html_url"`
		User    struct {
			Login string `json:"login"`
		} `json:"user"`
		Head struct {
			Sha string `json:"sha"`
		} `json:"head"`
	} `json:"pull_request"`
	Repository struct {
		FullName string `json:"full_name"`
	} `json:"repository"`
}

func buildPayload(i int) []byte {
	repos := []string{
		"one-wave-team3/hello-service",
		"one-wave-team3/retry-client",
		"someone-else/unknown-repo",
	}

	var p webhookPayload
	p.Action = "synchronize"
	p.Number = i%50 + 1
	p.Repository.FullName = repos[i%len(repos)]
	p.PullRequest.HtmlURL = fmt.Sprintf("https://github.com/%s/pull/%d", p.Repository.FullName, p.Number)
	p.PullRequest.User.Login = fmt.Sprintf("student-%d", i%10)
	p.PullRequest.Head.Sha = fmt.Sprintf("%040x", rand.Int63())

	body, _ := json.Marshal(p)
	return body
}

func main() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}

	i := 0
	targeter := func(tgt *vegeta.Target) error {
		tgt.Method = "POST"
		tgt.URL = targetHost + "/webhook/github"
		tgt.Header = map[string][]string{"Content-Type": {"application/json"}}
		tgt.Body = buildPayload(i)
		i++
		return nil
	}

	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	log.Printf("Attacking %s for %s at %d rps", targetHost, duration, rps)
	for res := range attacker.Attack(targeter, rate, duration, "webhook") {
		metrics.Add(res)
	}
	metrics.Close()

	log.Printf("Requests: %d", metrics.Requests)
	log.Printf("Success rate: %.2f%%", metrics.Success*100)
	log.Printf("p95 latency: %s", metrics.Latencies.P95)
	log.Printf("Status codes: %v", metrics.StatusCodes)
}
