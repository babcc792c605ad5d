package store

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the owner of competitions, identified by an opaque token.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID    int64  `bun:"id,pk,autoincrement"`
	Token string `bun:"token,notnull,unique"`
}

// PointsSystem is a scoring rule shared by every competition using the
// same values.
type PointsSystem struct {
	bun.BaseModel `bun:"table:points_systems,alias:ps"`

	ID   int64 `bun:"id,pk,autoincrement"`
	Win  int   `bun:"win,notnull,unique:points_system_values"`
	Lost int   `bun:"lost,notnull,unique:points_system_values"`
	Draw int   `bun:"draw,notnull,unique:points_system_values"`
}

// Competition is a round-robin competition between its Competitors.
type Competition struct {
	bun.BaseModel `bun:"table:competitions,alias:c"`

	ID             int64     `bun:"id,pk,autoincrement"`
	Name           string    `bun:"name,notnull"`
	UserID         int64     `bun:"user_id,notnull"`
	PointsSystemID int64     `bun:"points_system_id,notnull"`
	Format         string    `bun:"format,notnull"`
	CreatedAt      time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`

	Owner        *User         `bun:"rel:belongs-to,join:user_id=id"`
	PointsSystem *PointsSystem `bun:"rel:belongs-to,join:points_system_id=id"`
}

type Competitor struct {
	bun.BaseModel `bun:"table:competitors,alias:cr"`

	ID            int64  `bun:"id,pk,autoincrement"`
	CompetitionID int64  `bun:"competition_id,notnull"`
	Name          string `bun:"name,notnull"`

	Competition *Competition `bun:"rel:belongs-to,join:competition_id=id,on_delete:cascade"`
}

type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID            int64 `bun:"id,pk,autoincrement"`
	CompetitionID int64 `bun:"competition_id,notnull"`
	RoundNumber   int   `bun:"round_number,notnull"`

	Competition *Competition `bun:"rel:belongs-to,join:competition_id=id,on_delete:cascade"`
}

// Score is the score of one competitor in one match. It is NULL until the
// match result is reported.
type Score struct {
	bun.BaseModel `bun:"table:scores,alias:s"`

	ID           int64 `bun:"id,pk,autoincrement"`
	CompetitorID int64 `bun:"competitor_id,notnull"`
	Score        *int  `bun:"score"`

	Competitor *Competitor `bun:"rel:belongs-to,join:competitor_id=id,on_delete:cascade"`
}

type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	ID       int64 `bun:"id,pk,autoincrement"`
	RoundID  int64 `bun:"round_id,notnull"`
	Score1ID int64 `bun:"score_1_id,notnull"`
	Score2ID int64 `bun:"score_2_id,notnull"`

	Round  *Round `bun:"rel:belongs-to,join:round_id=id,on_delete:cascade"`
	Score1 *Score `bun:"rel:belongs-to,join:score_1_id=id"`
	Score2 *Score `bun:"rel:belongs-to,join:score_2_id=id"`
}

// models lists every table in creation order.
var models = []any{
	(*User)(nil),
	(*PointsSystem)(nil),
	(*Competition)(nil),
	(*Competitor)(nil),
	(*Round)(nil),
	(*Score)(nil),
	(*Match)(nil),
}
