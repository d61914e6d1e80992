package entities

import (
	"fmt"

	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
)

// TitleText returns the title screen text for the active control scheme.
func TitleText(control string) string {
	how := "steer with the arrow keys\nfire with space"
	if control == config.ControlPointer {
		how = "click or tap a card to aim and fire"
	}
	return fmt.Sprintf("%s\n\ncapture the ranks 2 to Ace in order\n%s\n\npress any key to start", config.WindowTitle, how)
}

// GameOverText is shown after a completed run.
const GameOverText = "Game over\n\npress any key to start"

// NewPrompt creates a text overlay entity.
//
// Parameters:
//   - em: entity manager
//   - kind: which overlay this is, used to find it again on state exit
//   - text: the lines to show
func NewPrompt(em *ecs.EntityManager, kind components.PromptKind, text string) (ecs.EntityID, error) {
	if em == nil {
		return 0, errNilManager
	}

	id := em.CreateEntity()
	rec, _ := em.Get(id)
	rec.Prompt = &components.PromptComponent{Kind: kind, Text: text}
	return id, nil
}
