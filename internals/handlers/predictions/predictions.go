package predictions

import (
	"net/http"

	"github.com/rs/zerolog"

	"FounderX/internals/advisor"
	"FounderX/internals/handlers/httpx"
)

type recommendRequest struct {
	Sector string `json:"sector" validate:"required"`
	Stage  string `json:"stage" validate:"required"`
}

type growthResponse struct {
	Domain string `json:"domain"`
	Score  int    `json:"score"`
}

type ideasResponse struct {
	Ideas []string `json:"ideas"`
}

// RecommendHandler answers with the static recommendation list; sector and
// stage are validated but not used.
func RecommendHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recommendRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		zerolog.Ctx(r.Context()).Debug().
			Str("sector", req.Sector).
			Str("stage", req.Stage).
			Msg("serving static recommendations")

		httpx.JSON(w, r, http.StatusOK, advisor.Recommend(req.Sector, req.Stage))
	}
}

func GrowthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		domain := r.URL.Query().Get("domain")
		httpx.JSON(w, r, http.StatusOK, growthResponse{Domain: domain, Score: advisor.PredictGrowth(domain)})
	}
}

func IdeasHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, r, http.StatusOK, ideasResponse{Ideas: advisor.SuggestIdeas(r.URL.Query().Get("domain"))})
	}
}
