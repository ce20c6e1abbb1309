package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ariel-guidde/inner-officials-sub001/internal/battle"
	"github.com/ariel-guidde/inner-officials-sub001/internal/catalog"
	"github.com/ariel-guidde/inner-officials-sub001/internal/config"
)

const maxMessageSize = 4096

// Command is one client request over the websocket.
type Command struct {
	Action   string   `json:"action"`
	CardID   string   `json:"card_id,omitempty"`
	Targets  []string `json:"targets,omitempty"`
	TargetID string   `json:"target_id,omitempty"`
	Seed     int64    `json:"seed,omitempty"`
}

// Response is the server's answer to a command, or the initial state push.
type Response struct {
	Type     string               `json:"type"`
	OK       bool                 `json:"ok"`
	Reason   string               `json:"reason,omitempty"`
	Snapshot *battle.Snapshot     `json:"snapshot,omitempty"`
	Result   *battle.BattleResult `json:"result,omitempty"`
}

// Server runs one battle per websocket connection. It is a session
// transport for a local UI, not a matchmaking surface: each connection
// owns its battle and nothing is shared between sessions.
type Server struct {
	cfg      *config.Config
	cat      *catalog.Catalog
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New creates a battle session server.
func New(cfg *config.Config, cat *catalog.Catalog, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		cfg:    cfg,
		cat:    cat,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the HTTP routes: /ws for battle sessions, /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleSession)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	sessionID := uuid.NewString()
	logger := s.logger.With(zap.String("session_id", sessionID))

	seed := int64(0)
	if raw := r.URL.Query().Get("seed"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			seed = parsed
		}
	}

	b, err := s.startBattle(seed)
	if err != nil {
		logger.Error("battle start failed", zap.Error(err))
		_ = conn.WriteJSON(Response{Type: "error", Reason: err.Error()})
		return
	}
	logger.Info("battle session started",
		zap.String("battle_id", b.ID()),
		zap.String("remote", r.RemoteAddr),
	)

	snap := b.Snapshot()
	if err := conn.WriteJSON(Response{Type: "state", OK: true, Snapshot: &snap}); err != nil {
		return
	}

	for {
		if s.cfg.Server.ReadTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.cfg.Server.ReadTimeout))
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("session read error", zap.Error(err))
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			_ = conn.WriteJSON(Response{Type: "error", Reason: "malformed command"})
			continue
		}

		resp := s.apply(b, cmd)
		if s.cfg.Server.WriteTimeout > 0 {
			_ = conn.SetWriteDeadline(time.Now().Add(s.cfg.Server.WriteTimeout))
		}
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
		if resp.Result != nil {
			logger.Info("battle session finished",
				zap.String("battle_id", b.ID()),
				zap.Bool("won", resp.Result.Won),
			)
		}
	}
}

// apply maps a command onto the battle's operation set.
func (s *Server) apply(b *battle.Battle, cmd Command) Response {
	var res battle.Result
	switch cmd.Action {
	case "play":
		res = b.PlayCard(cmd.CardID, cmd.Targets)
	case "select":
		res = b.SelectTarget(cmd.TargetID)
	case "confirm":
		res = b.ConfirmTargets()
	case "cancel":
		res = b.CancelTargeting()
	case "end_turn":
		res = b.EndTurn()
	case "state":
		snap := b.Snapshot()
		return Response{Type: "state", OK: true, Snapshot: &snap, Result: b.Result()}
	default:
		return Response{Type: "error", Reason: "unknown action: " + cmd.Action}
	}

	return Response{
		Type:     cmd.Action,
		OK:       res.OK,
		Reason:   res.Reason,
		Snapshot: &res.Snapshot,
		Result:   b.Result(),
	}
}

func (s *Server) startBattle(seed int64) (*battle.Battle, error) {
	bc := s.cfg.Battle
	deck := bc.DeckCardIDs
	if len(deck) == 0 {
		deck = s.cat.CardIDs()
	}
	return battle.Start(battle.Config{
		StartingFace:     bc.StartingFace,
		StartingPatience: bc.StartingPatience,
		StartingFavor:    bc.StartingFavor,
		DeckCardIDs:      deck,
		OpponentIndices:  bc.OpponentIndices,
		Rules:            RulesFromBalance(bc.Balance),
		Seed:             seed,
	}, s.cat, s.logger)
}

// RulesFromBalance maps config balance overrides onto engine rules; zero
// fields keep the engine defaults.
func RulesFromBalance(b config.BalanceConfig) battle.Rules {
	return battle.Rules{
		HandSize:                 b.HandSize,
		BalancedPatienceDiscount: b.BalancedPatienceDiscount,
		ChaosFaceSurcharge:       b.ChaosFaceSurcharge,
		ChaosFavorBonus:          b.ChaosFavorBonus,
		ShockTurns:               b.ShockTurns,
		TurnPatienceTick:         b.TurnPatienceTick,
		FavorJudgementBar:        b.FavorJudgementBar,
	}
}
