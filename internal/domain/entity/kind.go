package entity

// Kind identifies an entity collection in the local store and on the remote backend.
type Kind string

const (
	KindTransaction Kind = "transactions"
	KindCategory    Kind = "categories"
	KindProfile     Kind = "profile"
	KindGoal        Kind = "goals"
	KindRecurring   Kind = "recurring_transactions"
	KindAsset       Kind = "assets"
)

// CollectionKinds lists every collection-valued entity kind, in sync order.
// The profile singleton is handled separately by its callers.
func CollectionKinds() []Kind {
	return []Kind{
		KindTransaction,
		KindCategory,
		KindGoal,
		KindRecurring,
		KindAsset,
	}
}
