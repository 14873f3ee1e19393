package http

// ClientCount returns the number of WebSocket clients connected to s.
func ClientCount(s *Server) int {
	return s.hub.Count()
}
