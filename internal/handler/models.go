package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	Conflicts []EventResponse `json:"conflicts,omitempty"`
	Limit     int             `json:"limit,omitempty"`
}

// EventRequest используется и для создания, и для обновления; event_id нужен только при обновлении.
// Время передается в RFC3339.
type EventRequest struct {
	EventID     int64  `json:"event_id"`
	Title       string `json:"title"`
	OrganizerID int64  `json:"organizer_id"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	TeamEvent   bool   `json:"team_event"`
	MinTeamSize int    `json:"min_team_size"`
	MaxTeamSize int    `json:"max_team_size"`
}

type EventResponse struct {
	EventID     int64   `json:"event_id"`
	Title       string  `json:"title"`
	OrganizerID int64   `json:"organizer_id"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at"`
	TeamEvent   bool    `json:"team_event"`
	MinTeamSize int     `json:"min_team_size"`
	MaxTeamSize int     `json:"max_team_size"`
	CreatedAt   *string `json:"createdAt,omitempty"`
	UpdatedAt   *string `json:"updatedAt,omitempty"`
}

type EventEnvelope struct {
	Event EventResponse `json:"event"`
}

type EventIDRequest struct {
	EventID int64 `json:"event_id"`
}

type ScheduleCheckResponse struct {
	OK        bool            `json:"ok"`
	Conflicts []EventResponse `json:"conflicts"`
}

type CreateTeamRequest struct {
	Name     string `json:"name"`
	EventID  int64  `json:"event_id"`
	LeaderID int64  `json:"leader_id"`
}

type TeamMemberResponse struct {
	UserID    int64   `json:"user_id"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

type TeamResponse struct {
	TeamID      int64                `json:"team_id"`
	EventID     int64                `json:"event_id"`
	Name        string               `json:"name"`
	LeaderID    int64                `json:"leader_id"`
	JoinedCount int                  `json:"joined_count"`
	Members     []TeamMemberResponse `json:"members"`
}

type TeamEnvelope struct {
	Team TeamResponse `json:"team"`
}

type TeamIDRequest struct {
	TeamID int64 `json:"team_id"`
}

// AddMemberRequest: status по умолчанию joined
type AddMemberRequest struct {
	TeamID int64  `json:"team_id"`
	UserID int64  `json:"user_id"`
	Status string `json:"status"`
}

type MemberEnvelope struct {
	TeamID int64              `json:"team_id"`
	Member TeamMemberResponse `json:"member"`
}

type RespondInviteRequest struct {
	TeamID int64 `json:"team_id"`
	UserID int64 `json:"user_id"`
	Accept *bool `json:"accept"`
}

type RemoveMemberRequest struct {
	TeamID int64 `json:"team_id"`
	UserID int64 `json:"user_id"`
}

type TransferLeadershipRequest struct {
	TeamID      int64 `json:"team_id"`
	NewLeaderID int64 `json:"new_leader_id"`
}

type TeamReadinessResponse struct {
	TeamID      int64  `json:"team_id"`
	TeamName    string `json:"team_name"`
	JoinedCount int    `json:"joined_count"`
	MinTeamSize int    `json:"min_team_size"`
	MaxTeamSize int    `json:"max_team_size"`
	Ready       bool   `json:"ready"`
}

type TeamStatsResponse struct {
	EventID int64                   `json:"event_id"`
	Teams   []TeamReadinessResponse `json:"teams"`
}
