// Package supervisorynode provides CRUD for the supervision hierarchy and
// reconstructs the domain view of node subtrees.
package supervisorynode

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/domain"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// GetByID retrieves a node with its children and requisition group.
func GetByID(db *gorm.DB, id uuid.UUID) (*models.SupervisoryNode, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var node models.SupervisoryNode
	result := db.
		Preload("Children").
		Preload("RequisitionGroup").
		Preload("RequisitionGroup.Facilities").
		Preload("RequisitionGroup.Programs").
		First(&node, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeySupervisoryNodeNotFound)
		}

		return nil, result.Error
	}

	return &node, nil
}

// Search retrieves nodes matching the validated search parameters.
func Search(db *gorm.DB, p *params.SupervisoryNodeSearchParams) ([]models.SupervisoryNode, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Model(&models.SupervisoryNode{}).Order("supervisory_nodes.code")

	if ids := p.IDs(); len(ids) > 0 {
		tx = tx.Where("supervisory_nodes.id IN ?", ids)
	}

	if code := p.Code(); code != "" {
		tx = tx.Where("supervisory_nodes.code = ?", code)
	}

	if name := p.Name(); name != "" {
		tx = tx.Where("supervisory_nodes.name LIKE ?", "%"+name+"%")
	}

	if facilityID := p.FacilityID(); facilityID != uuid.Nil {
		tx = tx.Where("supervisory_nodes.facility_id = ?", facilityID)
	}

	if zoneID := p.ZoneID(); zoneID != uuid.Nil {
		tx = tx.
			Joins("JOIN facilities ON facilities.id = supervisory_nodes.facility_id").
			Where("facilities.geographic_zone_id = ?", zoneID)
	}

	if programID := p.ProgramID(); programID != uuid.Nil {
		tx = tx.
			Joins("JOIN requisition_groups rg ON rg.supervisory_node_id = supervisory_nodes.id").
			Joins("JOIN requisition_group_programs rgp ON rgp.requisition_group_id = rg.id").
			Where("rgp.program_id = ?", programID)
	}

	var nodes []models.SupervisoryNode
	if result := tx.Preload("Children").Find(&nodes); result.Error != nil {
		return nil, result.Error
	}

	return nodes, nil
}

// Create stores a new node.
func Create(db *gorm.DB, node *models.SupervisoryNode) (*models.SupervisoryNode, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if node.ID == uuid.Nil {
		node.ID = uuid.New()
	}

	if node.ParentID != nil {
		if _, err := GetByID(db, *node.ParentID); err != nil {
			return nil, err
		}
	}

	if result := db.Create(node); result.Error != nil {
		return nil, result.Error
	}

	return node, nil
}

// Update replaces the stored node fields.
func Update(db *gorm.DB, node *models.SupervisoryNode) (*models.SupervisoryNode, error) {
	if _, err := GetByID(db, node.ID); err != nil {
		return nil, err
	}

	result := db.Model(node).
		Select("code", "name", "description", "facility_id", "parent_id").
		Updates(node)
	if result.Error != nil {
		return nil, result.Error
	}

	return GetByID(db, node.ID)
}

// Delete removes a node. Child nodes are detached, not deleted.
func Delete(db *gorm.DB, id uuid.UUID) error {
	node, err := GetByID(db, id)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SupervisoryNode{}).
			Where("parent_id = ?", id).
			Update("parent_id", nil)
		if result.Error != nil {
			return result.Error
		}

		return tx.Delete(node).Error
	})
}

// LoadDomainNode reconstructs the domain view of a node subtree, children
// and requisition groups included.
func LoadDomainNode(db *gorm.DB, id uuid.UUID) (*domain.SupervisoryNode, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	row, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	return buildDomainNode(db, row)
}

func buildDomainNode(db *gorm.DB, row *models.SupervisoryNode) (*domain.SupervisoryNode, error) {
	node := &domain.SupervisoryNode{
		ID:   row.ID,
		Code: row.Code,
		Name: row.Name,
	}

	if row.FacilityID != nil {
		node.FacilityID = *row.FacilityID
	}

	if row.RequisitionGroup != nil {
		node.AttachGroup(toDomainGroup(row.RequisitionGroup))
	}

	for i := range row.Children {
		// children come shallow from the preload, reload with their own
		// children and groups
		childRow, err := GetByID(db, row.Children[i].ID)
		if err != nil {
			return nil, err
		}

		child, err := buildDomainNode(db, childRow)
		if err != nil {
			return nil, err
		}

		node.AddChild(child)
	}

	return node, nil
}

func toDomainGroup(row *models.RequisitionGroup) domain.RequisitionGroup {
	group := domain.RequisitionGroup{
		ID:   row.ID,
		Code: row.Code,
		Name: row.Name,
	}

	for _, facility := range row.Facilities {
		group.FacilityIDs = append(group.FacilityIDs, facility.ID)
	}

	for _, program := range row.Programs {
		group.ProgramIDs = append(group.ProgramIDs, program.ID)
	}

	return group
}
