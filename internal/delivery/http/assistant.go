package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"driver-buddy/internal/app/assistant"
	"driver-buddy/internal/delivery/http/response"
)

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Topic  string `json:"topic,omitempty"`
	Answer string `json:"answer"`
}

func Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		response.BadRequest(w, "Question is required")
		return
	}

	topic, _ := assistant.Match(req.Question)
	response.Success(w, askResponse{Topic: topic, Answer: assistant.Answer(req.Question)})
}
