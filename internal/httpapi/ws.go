package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
)

// wsResponse wraps a websocket reply so clients can match it to the op.
type wsResponse struct {
	Op     string      `json:"op"`
	Status int         `json:"status"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// wsHandler serves the request envelope over a websocket, one reply per
// message, until the client disconnects.
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.cfg.Server.MaxBodyBytes)
	s.logf(1, "websocket connection from %s\n", conn.RemoteAddr())

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logf(1, "websocket read from %s: %v\n", conn.RemoteAddr(), err)
			}
			return
		}

		var req Request
		reply := wsResponse{Status: http.StatusOK}
		if err := json.Unmarshal(data, &req); err != nil {
			reply.Status = http.StatusBadRequest
			reply.Error = "decoding request: " + err.Error()
		} else if result, err := s.dispatch(r.Context(), req); err != nil {
			reply.Op = req.Op
			reply.Status = statusFor(err)
			reply.Error = err.Error()
		} else {
			reply.Op = req.Op
			reply.Result = result
		}
		if err := conn.WriteJSON(reply); err != nil {
			s.logf(1, "websocket write to %s: %v\n", conn.RemoteAddr(), err)
			return
		}
	}
}
