package game

import (
	"flag"

	"github.com/plus3/snake/snake"
)

type placementValue struct {
	p *snake.Placement
}

func (v placementValue) String() string {
	if v.p == nil {
		return snake.AvoidSnake.String()
	}
	return v.p.String()
}

func (v placementValue) Set(s string) error {
	p, err := snake.ParsePlacement(s)
	if err != nil {
		return err
	}
	*v.p = p
	return nil
}

// BindFlags registers command line flags that write into cfg. Values already
// in cfg become the defaults.
func BindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Sim.Arena.Width, "width", cfg.Sim.Arena.Width, "Arena width in cells.")
	fs.IntVar(&cfg.Sim.Arena.Height, "height", cfg.Sim.Arena.Height, "Arena height in cells.")
	fs.IntVar(&cfg.Sim.Arena.Border, "border", cfg.Sim.Arena.Border, "Cells of wall inset on every side.")
	fs.IntVar(&cfg.Sim.FoodLimit, "food", cfg.Sim.FoodLimit, "Most food on the board at once.")
	fs.Var(placementValue{&cfg.Sim.Placement}, "placement", "Food placement: avoid-snake, avoid-head or anywhere.")
	fs.Uint64Var(&cfg.Sim.Seed, "seed", cfg.Sim.Seed, "Random seed; 0 picks one from the clock.")
	fs.DurationVar(&cfg.MoveEvery, "move-every", cfg.MoveEvery, "Time between movement ticks.")
	fs.DurationVar(&cfg.SpawnEvery, "spawn-every", cfg.SpawnEvery, "Time between food spawn attempts.")
}
