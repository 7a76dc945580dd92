package entities

// ProjectSubtaskThreshold is the subtask count at which a task becomes a
// project and is rendered as a boss monster.
const ProjectSubtaskThreshold = 5

// TaskStatus tracks the single allowed transition pending -> completed
type TaskStatus string

// Task statuses
const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// MonsterType tags the monster identity assigned to a task
type MonsterType string

// Monster types: one daily tag plus the four boss identities
const (
	MonsterTypeDaily  MonsterType = "daily"
	MonsterTypeCronos MonsterType = "boss_cronos"
	MonsterTypeHydra  MonsterType = "boss_hydra"
	MonsterTypeDragon MonsterType = "boss_dragon"
	MonsterTypeTitan  MonsterType = "boss_titan"
)

// Monster is the visual identity assigned to a task at creation. It is
// immutable for the task's lifetime.
type Monster struct {
	Name   string      `json:"name"`
	Type   MonsterType `json:"type"`
	Color  string      `json:"color"`
	Sprite string      `json:"sprite"`
	Style  string      `json:"style"`
}

// Task is one unit of work rendered as a monster to defeat. Monster identity
// and HP are frozen at creation from the bestiary; status moves from pending
// to completed exactly once.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	SubtaskCount int        `json:"subtask_count"`
	IsProject    bool       `json:"is_project"`
	Monster      Monster    `json:"monster"`
	HP           int        `json:"hp"`
	Status       TaskStatus `json:"status"`
	CreatedAt    int64      `json:"created_at"`
	CompletedAt  int64      `json:"completed_at,omitempty"`
}
