package assets

import (
	"fmt"

	"github.com/younwookim/portalknight/internal/domain/anim"
	"github.com/younwookim/portalknight/internal/domain/entity"
	"github.com/younwookim/portalknight/internal/infrastructure/config"
)

// loopPose is the pose of sprites configured without explicit poses
const loopPose = "loop"

// RequiredKinds lists every kind a level can spawn a sprite for
var RequiredKinds = []entity.Kind{
	entity.KindTile,
	entity.KindPlayer,
	entity.KindEnemyA,
	entity.KindEnemyB,
	entity.KindCoin,
	entity.KindPortal,
	entity.KindObstacle1,
	entity.KindObstacle2,
	entity.KindObstacle3,
}

// Library holds one prototype animator per entity kind
type Library struct {
	protos map[entity.Kind]*anim.Animator
}

// NewLibrary loads and slices every required sprite sheet.
// A missing sheet or sprite config is an error.
func NewLibrary(p Provider, sprites map[string]config.SpriteConfig) (*Library, error) {
	lib := &Library{protos: make(map[entity.Kind]*anim.Animator, len(RequiredKinds))}

	for _, kind := range RequiredKinds {
		sc, ok := sprites[kind.String()]
		if !ok {
			return nil, fmt.Errorf("no sprite configured for %s: %w", kind, ErrAssetNotFound)
		}
		a, err := buildAnimator(p, sc)
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", kind, err)
		}
		lib.protos[kind] = a
	}
	return lib, nil
}

func buildAnimator(p Provider, sc config.SpriteConfig) (*anim.Animator, error) {
	img, err := p.LoadImage(sc.Image)
	if err != nil {
		return nil, err
	}
	if sc.ColorKey {
		img = ApplyColorKey(img)
	}

	columns, rows := max(sc.Columns, 1), max(sc.Rows, 1)
	if len(sc.Poses) > 0 {
		poses := anim.PosesByRow(img, columns, rows, sc.Repeat, sc.Poses)
		if len(poses) == 0 {
			return nil, fmt.Errorf("sheet %s has no frames", sc.Image)
		}
		initial := sc.Poses[0]
		if _, ok := poses[initial]; !ok {
			return nil, fmt.Errorf("sheet %s has no row for pose %s", sc.Image, initial)
		}
		return anim.New(poses, initial), nil
	}

	frames := anim.SliceSheet(img, columns, rows)
	if len(frames) == 0 {
		return nil, fmt.Errorf("sheet %s is too small for %dx%d frames", sc.Image, columns, rows)
	}
	return anim.Single(loopPose, anim.Repeat(anim.Frames(frames), sc.Repeat)), nil
}

// Sprite returns fresh animation state for a kind (nil if unknown).
// Frames and masks are shared between all sprites of the kind.
func (l *Library) Sprite(kind entity.Kind) *anim.Animator {
	proto, ok := l.protos[kind]
	if !ok {
		return nil
	}
	return proto.Clone()
}
