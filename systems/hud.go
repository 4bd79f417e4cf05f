package systems

import (
	"fmt"

	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/fonts"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the distance counter in the top-left corner, plus the
// recovery hint while the skier is down.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	skierEntry, ok := tags.Skier.First(ecs.World)
	if !ok {
		return
	}

	meters := SkierDistance(skierEntry) * cfg.HUD.MetersPerPix
	if meters < 0 {
		meters = 0
	}
	label := fmt.Sprintf("Distance: %dm", int(meters))
	text.Draw(screen, label, fonts.HUD.Get(),
		int(cfg.HUD.Margin), int(cfg.HUD.Margin)+14, cfg.HUD.TextColor)

	if components.State.Get(skierEntry).CurrentState == cfg.StateCrashed {
		text.Draw(screen, cfg.HUD.CrashHint, fonts.HUD.Get(),
			int(cfg.HUD.Margin), int(cfg.HUD.Margin)+34, cfg.HUD.HintColor)
	}
}
