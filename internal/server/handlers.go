// internal/server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"marketing-advisor/internal/analysis"
	commonerrors "marketing-advisor/internal/common/errors"
)

// analyzeSchema validates the analyze request body before it reaches the
// pipeline. Validation failures stop the request; nothing is recorded.
const analyzeSchema = `{
	"type": "object",
	"required": ["business_name", "industry"],
	"properties": {
		"business_name": {"type": "string", "minLength": 1},
		"industry": {"type": "string", "minLength": 1},
		"website": {"type": "string"},
		"social_media": {"type": "object", "additionalProperties": {"type": "string"}},
		"monthly_revenue": {"type": "number", "minimum": 0},
		"marketing_budget": {"type": "number", "minimum": 0},
		"target_audience": {"type": "string"},
		"current_marketing_channels": {"type": "array", "items": {"type": "string"}},
		"competitor_info": {"type": "array", "items": {"type": "string"}}
	}
}`

var analyzeSchemaLoader = gojsonschema.NewStringLoader(analyzeSchema)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	validation, err := gojsonschema.Validate(analyzeSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !validation.Valid() {
		var problems []string
		for _, desc := range validation.Errors() {
			problems = append(problems, desc.String())
		}
		writeStandardError(w, http.StatusBadRequest,
			commonerrors.NewValidationFailedError(strings.Join(problems, "; ")))
		return
	}

	var record analysis.BusinessRecord
	if err := json.Unmarshal(body, &record); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	report, err := s.agent.AnalyzeBusiness(r.Context(), &record)
	if err != nil {
		var se *commonerrors.StandardError
		if errors.As(err, &se) {
			status := http.StatusServiceUnavailable
			if !commonerrors.IsRetryable(err) {
				status = http.StatusBadRequest
			}
			writeStandardError(w, status, se)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

type socialPostRequest struct {
	Platform        string `json:"platform"`
	Topic           string `json:"topic"`
	Tone            string `json:"tone"`
	IncludeHashtags *bool  `json:"include_hashtags"`
}

func (s *Server) handleSocialPost(w http.ResponseWriter, r *http.Request) {
	var req socialPostRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Platform == "" || req.Topic == "" {
		writeError(w, http.StatusBadRequest, "platform and topic are required")
		return
	}

	if req.Tone == "" {
		req.Tone = "professional"
	}
	includeHashtags := true
	if req.IncludeHashtags != nil {
		includeHashtags = *req.IncludeHashtags
	}

	post := s.agent.GenerateSocialPost(r.Context(), req.Platform, req.Topic, req.Tone, includeHashtags)
	writeJSON(w, http.StatusOK, post)
}

type emailCampaignRequest struct {
	CampaignType   string `json:"campaign_type"`
	TargetAudience string `json:"target_audience"`
	KeyMessage     string `json:"key_message"`
}

func (s *Server) handleEmailCampaign(w http.ResponseWriter, r *http.Request) {
	var req emailCampaignRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CampaignType == "" || req.KeyMessage == "" {
		writeError(w, http.StatusBadRequest, "campaign_type and key_message are required")
		return
	}

	email := s.agent.GenerateEmailCampaign(r.Context(), req.CampaignType, req.TargetAudience, req.KeyMessage)
	writeJSON(w, http.StatusOK, email)
}

type campaignStrategyRequest struct {
	Goal     string   `json:"goal"`
	Budget   string   `json:"budget"`
	Duration string   `json:"duration"`
	Channels []string `json:"channels"`
}

func (s *Server) handleCampaignStrategy(w http.ResponseWriter, r *http.Request) {
	var req campaignStrategyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Goal == "" || len(req.Channels) == 0 {
		writeError(w, http.StatusBadRequest, "goal and channels are required")
		return
	}

	strategy := s.agent.CreateCampaignStrategy(r.Context(), req.Goal, req.Budget, req.Duration, req.Channels)
	writeJSON(w, http.StatusOK, strategy)
}

type seoRequest struct {
	WebsiteType    string   `json:"website_type"`
	TargetKeywords []string `json:"target_keywords"`
}

func (s *Server) handleSEORecommendations(w http.ResponseWriter, r *http.Request) {
	var req seoRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.WebsiteType == "" || len(req.TargetKeywords) == 0 {
		writeError(w, http.StatusBadRequest, "website_type and target_keywords are required")
		return
	}

	seo := s.agent.GenerateSEORecommendations(r.Context(), req.WebsiteType, req.TargetKeywords)
	writeJSON(w, http.StatusOK, seo)
}

type marketTrendsRequest struct {
	Industry  string `json:"industry"`
	FocusArea string `json:"focus_area"`
}

func (s *Server) handleMarketTrends(w http.ResponseWriter, r *http.Request) {
	var req marketTrendsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Industry == "" || req.FocusArea == "" {
		writeError(w, http.StatusBadRequest, "industry and focus_area are required")
		return
	}

	trends := s.agent.AnalyzeMarketTrends(r.Context(), req.Industry, req.FocusArea)
	writeJSON(w, http.StatusOK, trends)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	records, err := s.agent.History(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(records),
		"history": records,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeStandardError serializes a StandardError with its code and details so
// API clients can branch on the code.
func writeStandardError(w http.ResponseWriter, status int, se *commonerrors.StandardError) {
	writeJSON(w, status, map[string]string{
		"error":   se.Message,
		"code":    string(se.Code),
		"details": se.Details,
	})
}
