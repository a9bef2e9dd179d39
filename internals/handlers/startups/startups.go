package startups

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"FounderX/internals/apperrors"
	"FounderX/internals/handlers/httpx"
	"FounderX/internals/models"
	startupsvc "FounderX/internals/startups"
)

type Service interface {
	Create(ctx context.Context, in startupsvc.CreateInput) (models.Startup, error)
	Get(ctx context.Context, id int64) (models.Startup, error)
	ListByFounder(ctx context.Context, founderID int64) ([]models.Startup, error)
}

type createRequest struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Domain    string  `json:"domain" validate:"required,max=100"`
	Stage     string  `json:"stage" validate:"max=50"`
	Funding   float64 `json:"funding" validate:"gte=0"`
	FounderID int64   `json:"founder_id" validate:"required,gt=0"`
}

type listResponse struct {
	Startups []models.Startup `json:"startups"`
}

type startupRef struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type createResponse struct {
	Status  string     `json:"status"`
	Startup startupRef `json:"startup"`
}

// CreateHandler creates a startup from query parameters (name, domain,
// founder_id, optional stage and funding) or, when none are given, from a
// JSON body with the same fields.
func CreateHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := readCreateRequest(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		s, err := svc.Create(r.Context(), startupsvc.CreateInput{
			Name:      req.Name,
			Domain:    req.Domain,
			Stage:     req.Stage,
			Funding:   req.Funding,
			FounderID: req.FounderID,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.JSON(w, r, http.StatusOK, createResponse{
			Status:  "success",
			Startup: startupRef{Id: s.Id, Name: s.Name},
		})
	}
}

func readCreateRequest(r *http.Request) (createRequest, error) {
	var req createRequest
	q := r.URL.Query()
	if !q.Has("name") && !q.Has("domain") && !q.Has("founder_id") {
		err := httpx.DecodeJSON(r, &req)
		return req, err
	}

	req.Name = q.Get("name")
	req.Domain = q.Get("domain")
	req.Stage = q.Get("stage")

	if v := q.Get("founder_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, apperrors.ErrInvalidField("founder_id", "integer")
		}
		req.FounderID = id
	}
	if v := q.Get("funding"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, apperrors.ErrInvalidField("funding", "number")
		}
		req.Funding = f
	}
	return req, httpx.Validate(req)
}

func GetHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			httpx.WriteError(w, r, apperrors.ErrInvalidField("id", "integer"))
			return
		}

		s, err := svc.Get(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, s)
	}
}

// ListHandler lists the startups of the founder given by ?founder_id=.
func ListHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		founderID, err := strconv.ParseInt(r.URL.Query().Get("founder_id"), 10, 64)
		if err != nil || founderID <= 0 {
			httpx.WriteError(w, r, apperrors.ErrInvalidField("founder_id", "integer"))
			return
		}

		list, err := svc.ListByFounder(r.Context(), founderID)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if list == nil {
			list = []models.Startup{}
		}
		httpx.JSON(w, r, http.StatusOK, listResponse{Startups: list})
	}
}
