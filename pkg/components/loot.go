package components

import "github.com/gonewx/survival/pkg/types"

// LootComponent 掉落物，被拾取一次后即销毁
type LootComponent struct {
	Item types.PlayerItem
}
