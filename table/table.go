package table

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	poolphysics "github.com/greigoat/Pool-Physics-2D"
	"github.com/greigoat/Pool-Physics-2D/transform"
	"github.com/greigoat/Pool-Physics-2D/vect"
)

var ErrNoCue = errors.New("no cue ball on the table")

// Table is a built scene: the space and handles to everything in it.
type Table struct {
	Space    *poolphysics.Space
	Cue      *poolphysics.Body
	Balls    []*poolphysics.Body
	Cushions []*poolphysics.Collider
	Pockets  []*Pocket

	Scene  *Scene
	Logger *log.Logger

	pocketed []string
	frames   int
}

// Summary describes how a Run ended.
type Summary struct {
	Scene    string
	Frames   int
	Elapsed  vect.Float
	Settled  bool
	Cleared  bool
	Pocketed []string
	// Tags of the balls left on the table, cue included.
	Remaining []string
}

// Build creates a space holding every object of scene. A nil logger uses log.Default().
func Build(scene *Scene, logger *log.Logger) (*Table, error) {
	if logger == nil {
		logger = log.Default()
	}

	space := poolphysics.NewSpace()
	space.FixedDelta = scene.Simulation.FixedDelta
	space.MaxFixedSteps = scene.Simulation.MaxFixedSteps
	space.Logger = logger

	tbl := &Table{
		Space:  space,
		Scene:  scene,
		Logger: logger,
	}

	materials := make(map[string]*poolphysics.Material, len(scene.Materials))
	for name, spec := range scene.Materials {
		e := poolphysics.DefaultElasticity
		if spec.Elasticity != nil {
			e = *spec.Elasticity
		}
		density := DefaultDensity
		if spec.Density != nil {
			density = *spec.Density
		}
		materials[name] = poolphysics.NewMaterial(density, e)
	}
	material := func(name string) (*poolphysics.Material, error) {
		if name == "" {
			return nil, nil
		}
		m, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownMaterial)
		}
		return m, nil
	}

	for i, spec := range scene.Cushions {
		cushion, err := poolphysics.NewBox(transform.NewTransform(spec.Position), spec.Size)
		if err != nil {
			return nil, fmt.Errorf("cushion %d: %w", i, err)
		}
		if cushion.Material, err = material(spec.Material); err != nil {
			return nil, fmt.Errorf("cushion %d: %w", i, err)
		}
		cushion.Tag = spec.Name
		tbl.Cushions = append(tbl.Cushions, space.AddCollider(cushion))
	}

	for i, spec := range scene.Pockets {
		pocket, err := NewPocket(space, spec.Position, spec.Radius)
		if err != nil {
			return nil, fmt.Errorf("pocket %d: %w", i, err)
		}
		pocket.CueSpawn = *scene.Simulation.CueSpawn
		pocket.Pocketed = tbl.onPocketed
		tbl.Pockets = append(tbl.Pockets, pocket)
	}

	for i, spec := range scene.Balls {
		collider, err := poolphysics.NewCircle(transform.NewTransform(spec.Position), spec.Radius)
		if err != nil {
			return nil, fmt.Errorf("ball %d: %w", i, err)
		}
		if collider.Material, err = material(spec.Material); err != nil {
			return nil, fmt.Errorf("ball %d: %w", i, err)
		}
		collider.Tag = spec.Tag

		drag := DefaultDrag
		if spec.Drag != nil {
			drag = *spec.Drag
		}
		body, err := poolphysics.NewBody(collider, drag)
		if err != nil {
			return nil, fmt.Errorf("ball %d: %w", i, err)
		}
		body.SetVelocity(spec.Velocity)
		space.AddBody(body)

		tbl.Balls = append(tbl.Balls, body)
		if spec.Tag == CueTag {
			tbl.Cue = body
		}
	}

	logger.Debug("table built", "scene", scene.Name, "balls", len(tbl.Balls),
		"cushions", len(tbl.Cushions), "pockets", len(tbl.Pockets))
	return tbl, nil
}

func (tbl *Table) onPocketed(pocket *Pocket, ball *poolphysics.Collider) {
	tbl.pocketed = append(tbl.pocketed, ball.Tag)
	tbl.Logger.Info("ball pocketed", "ball", ball.Tag, "pocket", pocket.Position(), "frame", tbl.frames)
}

// Shoot gives the cue ball an impulse of the given magnitude along dir.
func (tbl *Table) Shoot(dir vect.Vect, impulse vect.Float) error {
	if tbl.Cue == nil || tbl.Cue.Collider().Destroyed() {
		return ErrNoCue
	}
	tbl.Cue.ApplyImpulse(vect.Mult(vect.Normalize(dir), impulse))
	tbl.Logger.Debug("shot", "dir", dir, "impulse", impulse, "speed", tbl.Cue.Speed())
	return nil
}

// Step advances one rendered frame and keeps the cue ball under its speed limit.
func (tbl *Table) Step(frameDt vect.Float) {
	tbl.Space.Update(frameDt)
	tbl.frames++

	if tbl.Cue != nil {
		tbl.Cue.SetVelocity(vect.Clamp(tbl.Cue.Velocity(), tbl.Scene.Simulation.MaxCueSpeed))
	}
}

// Settled reports whether every ball has come to rest.
func (tbl *Table) Settled() bool {
	return tbl.Space.Sleeping(tbl.Scene.Simulation.RestThreshold)
}

// Cleared reports whether every ball but the cue ball was pocketed.
func (tbl *Table) Cleared() bool {
	for _, ball := range tbl.Balls {
		if ball != tbl.Cue && !ball.Collider().Destroyed() {
			return false
		}
	}
	return true
}

// Run plays the scene's shot, if any, then steps up to frames frames of frameDt.
// With untilRest it stops as soon as the table settles. It also stops when ctx is done.
func (tbl *Table) Run(ctx context.Context, frames int, frameDt vect.Float, untilRest bool) (Summary, error) {
	if shot := tbl.Scene.Shot; shot != nil && tbl.frames == 0 {
		if err := tbl.Shoot(shot.Direction, shot.Impulse); err != nil {
			return Summary{}, err
		}
	}

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return tbl.Summary(), err
		}
		tbl.Step(frameDt)

		if untilRest && tbl.Settled() {
			tbl.Logger.Debug("table settled", "frame", tbl.frames)
			break
		}
		if tbl.Cleared() {
			tbl.Logger.Info("table cleared", "frame", tbl.frames)
			break
		}
	}
	return tbl.Summary(), nil
}

func (tbl *Table) Summary() Summary {
	var remaining []string
	for _, ball := range tbl.Balls {
		if !ball.Collider().Destroyed() {
			remaining = append(remaining, ball.Collider().Tag)
		}
	}
	sort.Strings(remaining)

	return Summary{
		Scene:     tbl.Scene.Name,
		Frames:    tbl.frames,
		Elapsed:   tbl.Space.Elapsed(),
		Settled:   tbl.Settled(),
		Cleared:   tbl.Cleared(),
		Pocketed:  append([]string(nil), tbl.pocketed...),
		Remaining: remaining,
	}
}
