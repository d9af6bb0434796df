package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dosada05/bracket-engine/brackets"
	"github.com/Dosada05/bracket-engine/participants"
	"github.com/Dosada05/bracket-engine/services"
)

// BracketRequest carries the competitors either as a JSON array or as
// newline/comma separated text.
type BracketRequest struct {
	Competitors json.RawMessage `json:"competitors,omitempty" swaggertype:"array,string"`
	Text        *string         `json:"text,omitempty"`
	Room        string          `json:"room,omitempty"`
}

func (req BracketRequest) competitors() ([]string, error) {
	if req.Text != nil {
		if len(req.Competitors) > 0 {
			return nil, errors.New("provide either competitors or text, not both")
		}
		return participants.Parse(*req.Text), nil
	}
	return brackets.DecodeCompetitors(req.Competitors)
}

type BracketHandler struct {
	bracketService services.BracketService
}

func NewBracketHandler(bs services.BracketService) *BracketHandler {
	return &BracketHandler{
		bracketService: bs,
	}
}

func (h *BracketHandler) readRequest(w http.ResponseWriter, r *http.Request) (BracketRequest, []string, bool) {
	var input BracketRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return input, nil, false
	}
	competitors, err := input.competitors()
	if err != nil {
		badRequestResponse(w, r, err)
		return input, nil, false
	}
	return input, competitors, true
}

// GenerateBracket godoc
// @Summary Generate a bracket
// @Tags brackets
// @Description Seeds the competitors at random and builds the full single or double elimination bracket.
// @Description Real matches are left unresolved; only byes carry a winner.
// @Accept json
// @Produce json
// @Param format path string true "Bracket format" Enums(single_elimination, double_elimination)
// @Param body body BracketRequest true "Competitors as a JSON array or as text, optional websocket room"
// @Success 200 {object} map[string]interface{} "Generated bracket"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown format"
// @Failure 422 {object} map[string]interface{} "No participants (empty bracket with error message)"
// @Router /brackets/{format} [post]
func (h *BracketHandler) GenerateBracket(w http.ResponseWriter, r *http.Request) {
	input, competitors, ok := h.readRequest(w, r)
	if !ok {
		return
	}

	res, err := h.bracketService.Generate(r.Context(), services.GenerateInput{
		Format:      formatFromURL(r),
		Competitors: competitors,
		Room:        input.Room,
	})
	if err != nil {
		if errors.Is(err, brackets.ErrNoParticipants) && res != nil {
			if err := writeJSON(w, http.StatusUnprocessableEntity, res, nil); err != nil {
				serverErrorResponse(w, r, err)
			}
			return
		}
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, res, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PreviewBrackets godoc
// @Summary Preview both bracket formats
// @Tags brackets
// @Description Generates a single and a double elimination bracket for the same competitors.
// @Accept json
// @Produce json
// @Param body body BracketRequest true "Competitors"
// @Success 200 {object} services.PreviewResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} services.PreviewResult "No participants"
// @Router /brackets/preview [post]
func (h *BracketHandler) PreviewBrackets(w http.ResponseWriter, r *http.Request) {
	_, competitors, ok := h.readRequest(w, r)
	if !ok {
		return
	}

	preview, err := h.bracketService.Preview(r.Context(), competitors)
	if err != nil {
		if errors.Is(err, brackets.ErrNoParticipants) && preview != nil {
			if err := writeJSON(w, http.StatusUnprocessableEntity, preview, nil); err != nil {
				serverErrorResponse(w, r, err)
			}
			return
		}
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, preview, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportBracket godoc
// @Summary Export a bracket as text
// @Tags brackets
// @Accept json
// @Produce plain
// @Param format path string true "Bracket format" Enums(single_elimination, double_elimination)
// @Param body body BracketRequest true "Competitors"
// @Success 200 {string} string "Plain text bracket"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown format"
// @Failure 422 {object} map[string]string "No participants"
// @Router /brackets/{format}/export [post]
func (h *BracketHandler) ExportBracket(w http.ResponseWriter, r *http.Request) {
	_, competitors, ok := h.readRequest(w, r)
	if !ok {
		return
	}

	text, _, err := h.bracketService.Export(r.Context(), formatFromURL(r), competitors)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// PublishBracket godoc
// @Summary Publish a bracket export
// @Tags brackets
// @Description Generates a bracket, exports it as text and uploads it to object storage.
// @Accept json
// @Produce json
// @Param format path string true "Bracket format" Enums(single_elimination, double_elimination)
// @Param body body BracketRequest true "Competitors"
// @Success 201 {object} map[string]interface{} "Published export"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "No participants"
// @Failure 503 {object} map[string]string "Publishing not configured"
// @Security BearerAuth
// @Router /brackets/{format}/publish [post]
func (h *BracketHandler) PublishBracket(w http.ResponseWriter, r *http.Request) {
	_, competitors, ok := h.readRequest(w, r)
	if !ok {
		return
	}

	published, err := h.bracketService.Publish(r.Context(), formatFromURL(r), competitors)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"export": published}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *BracketHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
