package core

// BodyKind identifies what a Body depicts so frontends can style it.
type BodyKind string

const (
	BodyBall   BodyKind = "ball"
	BodyPaddle BodyKind = "paddle"
	BodySprite BodyKind = "sprite"
)

// Body is one drawable rectangle in world units.
type Body struct {
	Kind    BodyKind `json:"kind"`
	Box     RectF    `json:"box"`
	Texture string   `json:"texture,omitempty"` // Asset path, empty for solid fill
}

// Snapshot is a complete, immutable view of a game frame.
// It is what frontends draw and what spectators receive; it holds
// primitive values only so it serializes stably.
type Snapshot struct {
	GameID string  `json:"game_id"`
	Tick   uint64  `json:"tick"`
	WorldW float64 `json:"world_w"`
	WorldH float64 `json:"world_h"`
	Bodies []Body  `json:"bodies"`
	HUD    string  `json:"hud"`
	Score  int     `json:"score"`
	Lives  int     `json:"lives"`
	Paused bool    `json:"paused"`
}

// Textures returns the distinct texture paths referenced by the snapshot.
func (s Snapshot) Textures() []string {
	seen := make(map[string]bool)
	var paths []string
	for _, b := range s.Bodies {
		if b.Texture == "" || seen[b.Texture] {
			continue
		}
		seen[b.Texture] = true
		paths = append(paths, b.Texture)
	}
	return paths
}
