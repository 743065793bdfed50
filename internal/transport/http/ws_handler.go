package http

import (
	"encoding/json"
	"log"
	"net/http"

	"flagquiz-service/internal/app"
	"flagquiz-service/internal/domain"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	service     *app.QuizService
	defaultLang string
	upgrader    websocket.Upgrader
}

// NewWSHandler builds the websocket endpoint. defaultLang is used for
// option and feedback names when the client does not pass ?lang=.
func NewWSHandler(service *app.QuizService, defaultLang string) *WSHandler {
	return &WSHandler{
		service:     service,
		defaultLang: defaultLang,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	Difficulty string `json:"difficulty"`
}

type answerPayload struct {
	Index int `json:"index"`
}

type restartPayload struct {
	SameDifficulty bool `json:"sameDifficulty"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type sessionStartPayload struct {
	TotalQuestions int `json:"totalQuestions"`
}

type questionPayload struct {
	FlagRef string   `json:"flagRef"`
	Options []string `json:"options"`
}

type answerResultPayload struct {
	CorrectIndex  int    `json:"correctIndex"`
	SelectedIndex int    `json:"selectedIndex"`
	CorrectName   string `json:"correctName"`
}

type scorePayload struct {
	Score             int `json:"score"`
	QuestionsAnswered int `json:"questionsAnswered"`
	Accuracy          int `json:"accuracy"`
}

type progressPayload struct {
	Percent int `json:"percent"`
}

type highlightPayload struct {
	CountryID string             `json:"countryId"`
	Coords    domain.Coordinates `json:"coords"`
}

// wsNotifier renders engine notifications as JSON frames. It implements
// both the presentation and the geo highlight adapter; calls arrive from
// the connection's read loop, so pushing onto send needs no lock.
type wsNotifier struct {
	send chan outboundMessage[any]
}

func (n *wsNotifier) OnSessionStart(total int) {
	n.send <- outboundMessage[any]{Type: "sessionStart", Payload: sessionStartPayload{TotalQuestions: total}}
}

func (n *wsNotifier) OnQuestionReady(flagRef string, options []string) {
	n.send <- outboundMessage[any]{Type: "question", Payload: questionPayload{FlagRef: flagRef, Options: options}}
}

func (n *wsNotifier) OnAnswerResult(correctIndex, selectedIndex int, correctName string) {
	n.send <- outboundMessage[any]{Type: "answerResult", Payload: answerResultPayload{
		CorrectIndex:  correctIndex,
		SelectedIndex: selectedIndex,
		CorrectName:   correctName,
	}}
}

func (n *wsNotifier) OnScoreChanged(score, answered int) {
	n.send <- outboundMessage[any]{Type: "score", Payload: scorePayload{
		Score:             score,
		QuestionsAnswered: answered,
		Accuracy:          app.LiveAccuracy(score, answered-1),
	}}
}

func (n *wsNotifier) OnProgressChanged(percent int) {
	n.send <- outboundMessage[any]{Type: "progress", Payload: progressPayload{Percent: percent}}
}

func (n *wsNotifier) OnSessionEnd(summary domain.SessionSummary) {
	n.send <- outboundMessage[any]{Type: "sessionEnd", Payload: summary}
}

func (n *wsNotifier) Highlight(countryID string, coords domain.Coordinates) {
	n.send <- outboundMessage[any]{Type: "highlight", Payload: highlightPayload{CountryID: countryID, Coords: coords}}
}

func (n *wsNotifier) ClearHighlight() {
	n.send <- outboundMessage[any]{Type: "clearHighlight", Payload: struct{}{}}
}

// ServeWS upgrades HTTP requests to websockets and wires them into the
// quiz use cases. One socket drives one session.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		http.Error(w, "missing sessionId", http.StatusBadRequest)
		return
	}
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = h.defaultLang
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	notifier := &wsNotifier{send: make(chan outboundMessage[any], 64)}
	h.service.Connect(r.Context(), sessionID, notifier, notifier, app.WithLanguage(lang))
	defer h.service.Release(r.Context(), sessionID)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for msg := range notifier.send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				// keep draining so the read loop never blocks on send
				for range notifier.send {
				}
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				notifier.send <- errorMessage("invalid start payload")
				continue
			}
			if _, err := h.service.StartSession(r.Context(), sessionID, domain.Difficulty(payload.Difficulty), app.WithLanguage(lang)); err != nil {
				notifier.send <- errorMessage(err.Error())
			}
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				notifier.send <- errorMessage("invalid answer payload")
				continue
			}
			if err := h.service.SubmitAnswer(r.Context(), sessionID, payload.Index); err != nil {
				notifier.send <- errorMessage(err.Error())
			}
		case "advance":
			if err := h.service.Advance(r.Context(), sessionID); err != nil {
				notifier.send <- errorMessage(err.Error())
			}
		case "restart":
			var payload restartPayload
			if len(inbound.Payload) > 0 {
				if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
					notifier.send <- errorMessage("invalid restart payload")
					continue
				}
			}
			if _, err := h.service.RestartSession(r.Context(), sessionID, payload.SameDifficulty); err != nil {
				notifier.send <- errorMessage(err.Error())
			}
		case "end":
			if err := h.service.EndSession(r.Context(), sessionID); err != nil {
				notifier.send <- errorMessage(err.Error())
			}
		default:
			notifier.send <- errorMessage("unsupported message type")
		}
	}

	close(notifier.send)
	<-writerDone
}

func errorMessage(msg string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: msg}}
}
