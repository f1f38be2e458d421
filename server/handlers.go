package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/luca-patrignani/solitaire/domain/solitaire"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type errorResponse struct {
	Error string          `json:"error"`
	State *solitaire.View `json:"state,omitempty"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view := s.game.View()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

// handleAction applies an Action sent as JSON. Illegal moves answer 409 with
// the unchanged table.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var action solitaire.Action
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&action); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid action: " + err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.game.Apply(action)
	view := s.game.View()
	if errors.Is(err, solitaire.ErrIllegalMove) {
		s.logger.Info("rejected action", "type", action.Type, "reason", err.Error())
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), State: &view})
		return
	}
	if err != nil {
		s.logger.Error("action failed", "type", action.Type, "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if view.Won {
		s.logger.Info("game won", "game", s.games)
	}
	s.hub.Broadcast(view)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = s.newGame()
	view := s.game.View()
	s.logger.Info("new game", "game", s.games)
	s.hub.Broadcast(view)
	writeJSON(w, http.StatusOK, view)
}

// handleQR returns a PNG QR code of the page address.
func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	url := s.publicURL
	if url == "" {
		url = "http://" + r.Host + "/"
	}
	png, err := GenerateQR(url)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// handleWS upgrades the connection and streams the table to the client,
// starting with the current one.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("ws upgrade failed", "error", err.Error())
		return
	}
	client := NewClient(s.hub, conn)

	s.mu.Lock()
	view := s.game.View()
	client.SendView(view)
	s.hub.Register(client)
	s.mu.Unlock()

	go client.WritePump()
	go client.ReadPump()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
