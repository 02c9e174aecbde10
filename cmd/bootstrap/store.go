package bootstrap

import (
	"context"

	"carevacay/internal/infra/memstore"
	"carevacay/internal/usecase/commands"
	"carevacay/internal/usecase/queries"

	"go.uber.org/fx"
)

// StoreModule wires the in-memory stores. Each store is constructed once and
// the port interfaces are bound to that same instance so that seeding and
// serving see the same data.
var StoreModule = fx.Module("store",
	fx.Provide(
		memstore.NewPropertyStore,
		memstore.NewConversationStore,
		memstore.NewUserDirectory,
		func(s *memstore.PropertyStore) queries.PropertyReadStore { return s },
		func(s *memstore.ConversationStore) commands.ConversationStore { return s },
		func(s *memstore.ConversationStore) queries.ConversationReadStore { return s },
		func(d *memstore.UserDirectory) commands.UserDirectory { return d },
	),
	fx.Invoke(seedDemoData),
)

func seedDemoData(properties *memstore.PropertyStore, directory *memstore.UserDirectory) error {
	return memstore.SeedDemoData(context.Background(), properties, directory)
}
