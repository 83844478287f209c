package models

import (
	"time"

	"github.com/google/uuid"
)

// SupervisoryNode is a node in the supervision hierarchy. Supervision role
// assignments attached to a node cover all facilities of its requisition
// group and, transitively, of all child nodes.
type SupervisoryNode struct {
	// ID is the unique identifier for the node.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Code is the unique node code.
	Code string `gorm:"unique;size:50;not null"`
	// Name is the display name of the node.
	Name string `gorm:"size:100"`
	// Description provides a human-readable description.
	Description string `gorm:"size:255"`
	// FacilityID is the facility the supervising team sits at.
	FacilityID *uuid.UUID `gorm:"type:uuid"`
	// ParentID references the parent node, nil for roots.
	ParentID *uuid.UUID `gorm:"type:uuid"`
	// Children are the directly supervised child nodes.
	Children []SupervisoryNode `gorm:"foreignKey:ParentID"`
	// RequisitionGroup is the group of facilities this node supervises.
	RequisitionGroup *RequisitionGroup `gorm:"foreignKey:SupervisoryNodeID"`
	// CreatedAt is the timestamp when the node was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the node was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the SupervisoryNode model.
func (SupervisoryNode) TableName() string {
	return "supervisory_nodes"
}

// RequisitionGroup groups member facilities under a supervisory node for one
// or more programs.
type RequisitionGroup struct {
	// ID is the unique identifier for the group.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Code is the unique group code.
	Code string `gorm:"unique;size:50;not null"`
	// Name is the display name of the group.
	Name string `gorm:"size:100"`
	// SupervisoryNodeID is the node the group hangs off.
	SupervisoryNodeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	// Facilities are the member facilities (many-to-many).
	Facilities []Facility `gorm:"many2many:requisition_group_facilities"`
	// Programs are the programs the group schedules (many-to-many).
	Programs []Program `gorm:"many2many:requisition_group_programs"`
	// CreatedAt is the timestamp when the group was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the group was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the RequisitionGroup model.
func (RequisitionGroup) TableName() string {
	return "requisition_groups"
}
