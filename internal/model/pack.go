package model

type CouplesPackStatus string

const (
	CouplesPendingPartner CouplesPackStatus = "pending_partner"
	CouplesPendingTests   CouplesPackStatus = "pending_tests"
	CouplesComplete       CouplesPackStatus = "complete"
)

// CouplesPack pairs two users' results for a compatibility comparison. The
// partner joins by invite code; the pack completes once both results are
// linked and the comparison is generated.
//
// swagger:model CouplesPack
type CouplesPack struct {
	UUIDBase
	CreatorID       uint              `gorm:"index;not null" json:"creatorId"`
	PartnerID       *uint             `gorm:"index" json:"partnerId"`
	PartnerEmail    string            `gorm:"size:100" json:"partnerEmail"`
	InviteCode      string            `gorm:"size:16;uniqueIndex;not null" json:"inviteCode"`
	CreatorResultID string            `gorm:"size:36" json:"creatorResultId"`
	PartnerResultID string            `gorm:"size:36" json:"partnerResultId"`
	Status          CouplesPackStatus `gorm:"type:enum('pending_partner','pending_tests','complete');default:'pending_partner'" json:"status"`
	Comparison      string            `gorm:"type:longtext" json:"-"`
}

func (CouplesPack) TableName() string {
	return "couples_packs"
}

// TeamMember is one linked participant inside a team pack.
type TeamMember struct {
	UserID           uint   `json:"user_id"`
	Name             string `json:"name"`
	ResultID         string `json:"result_id"`
	PrimaryArchetype string `json:"primary_archetype"`
}

// swagger:model TeamPack
type TeamPack struct {
	UUIDBase
	Name       string       `gorm:"size:100;not null" json:"name"`
	OwnerID    uint         `gorm:"index;not null" json:"ownerId"`
	InviteCode string       `gorm:"size:16;uniqueIndex;not null" json:"inviteCode"`
	MaxMembers int          `gorm:"default:10" json:"maxMembers"`
	Members    []TeamMember `gorm:"type:json;serializer:json" json:"members"`
	Analysis   string       `gorm:"type:longtext" json:"-"`
}

func (TeamPack) TableName() string {
	return "team_packs"
}
