package service

// Broadcaster pushes events to live dashboard connections.
// Implemented by the WebSocket hub.
type Broadcaster interface {
	BroadcastToDashboard(surveyID string, msgType string, payload interface{})
}
