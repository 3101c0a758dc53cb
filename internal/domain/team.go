package domain

import (
	"fmt"
	"time"
)

type Team struct {
	ID        int64
	EventID   int64
	Name      string
	LeaderID  int64
	Members   []TeamMember
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// JoinedCount считает участников в статусе joined
func (t *Team) JoinedCount() int {
	count := 0
	for _, member := range t.Members {
		if member.Status == MemberJoined {
			count++
		}
	}
	return count
}

type TeamMember struct {
	TeamID    int64
	UserID    int64
	Status    MemberStatus
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// TeamState - снимок команды, прочитанный под блокировкой строки
type TeamState struct {
	ID          int64
	EventID     int64
	LeaderID    int64
	JoinedCount int
}

type MemberStatus string

const (
	MemberInvited  MemberStatus = "invited"
	MemberJoined   MemberStatus = "joined"
	MemberDeclined MemberStatus = "declined"
	MemberRemoved  MemberStatus = "removed"
)

func ParseMemberStatus(s string) (MemberStatus, error) {
	switch status := MemberStatus(s); status {
	case MemberInvited, MemberJoined, MemberDeclined, MemberRemoved:
		return status, nil
	}
	return "", fmt.Errorf("unknown member status %q", s)
}

// CanTransition описывает допустимые переходы:
// invited -> joined, invited -> declined, invited -> removed, joined -> removed.
func (s MemberStatus) CanTransition(to MemberStatus) bool {
	switch s {
	case MemberInvited:
		return to == MemberJoined || to == MemberDeclined || to == MemberRemoved
	case MemberJoined:
		return to == MemberRemoved
	}
	return false
}

// TeamReadiness - отчетная информация: min_team_size не блокирует запись.
type TeamReadiness struct {
	TeamID      int64
	TeamName    string
	EventID     int64
	JoinedCount int
	MinTeamSize int
	MaxTeamSize int
}

func (r *TeamReadiness) Ready() bool {
	return r.JoinedCount >= r.MinTeamSize
}
