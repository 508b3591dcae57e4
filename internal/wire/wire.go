//go:build wireinject
// +build wireinject

package wire

import (
	"log/slog"

	"github.com/google/wire"

	chathandler "github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/chat/handler"
	chatrepo "github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/chat/repository"
	chatservice "github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/chat/service"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/common"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/config"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/game"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/presence"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/realtime"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/server"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/user"
)

var infraSet = wire.NewSet(
	ProvideDatabase,
	ProvideTokenManager,
	ProvidePresence,
	ProvideArchive,
	common.NewKeyedMutex,
	wire.Bind(new(common.TokenValidator), new(*common.TokenManager)),
	wire.Bind(new(user.TokenIssuer), new(*common.TokenManager)),
	wire.Bind(new(realtime.SocketTokenVerifier), new(*common.TokenManager)),
)

var realtimeSet = wire.NewSet(
	realtime.NewRegistry,
	realtime.NewNotifier,
	realtime.NewHandshake,
	wire.Bind(new(realtime.Presence), new(presence.Tracker)),
	wire.Bind(new(user.PresenceReader), new(presence.Tracker)),
	wire.Bind(new(user.Notifier), new(*realtime.Notifier)),
	wire.Bind(new(game.Notifier), new(*realtime.Notifier)),
	wire.Bind(new(chatservice.Notifier), new(*realtime.Notifier)),
)

var userSet = wire.NewSet(
	user.NewUserRepository,
	user.NewFriendRepository,
	user.NewUserService,
	user.NewFriendService,
	user.NewHandler,
)

var gameSet = wire.NewSet(
	game.NewMatchRepository,
	game.NewInvitationRepository,
	game.NewMatchService,
	game.NewInvitationService,
	game.NewHandler,
	wire.Bind(new(game.UserLookup), new(user.UserRepository)),
	wire.Bind(new(game.FriendshipChecker), new(user.FriendRepository)),
	wire.Bind(new(game.ChatCloser), new(chatservice.ChatService)),
)

var chatSet = wire.NewSet(
	chatrepo.NewChatRepository,
	chatservice.NewChatService,
	chathandler.NewChatHandler,
	wire.Bind(new(chatservice.MatchReader), new(game.MatchRepository)),
	wire.Bind(new(chatservice.UserLookup), new(user.UserRepository)),
)

func InitializeApplication(cfg *config.Config, log *slog.Logger) (*Application, func(), error) {
	wire.Build(
		infraSet,
		realtimeSet,
		userSet,
		gameSet,
		chatSet,
		wire.Struct(new(server.Handlers), "*"),
		server.NewRouter,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
