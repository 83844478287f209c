package auth

// Right name constants define the system rights seeded at startup. These are
// the names controllers pass to the RightService before acting.
const (
	// RightFacilitiesManage allows administering facilities and facility types.
	RightFacilitiesManage = "FACILITIES_MANAGE"
	// RightGeographicZoneManage allows administering geographic zones.
	RightGeographicZoneManage = "GEOGRAPHIC_ZONE_MANAGE"
	// RightProgramsManage allows administering programs.
	RightProgramsManage = "PROGRAMS_MANAGE"
	// RightOrderablesManage allows administering orderables and approved products.
	RightOrderablesManage = "ORDERABLES_MANAGE"
	// RightSupplyLinesManage allows administering supply lines.
	RightSupplyLinesManage = "SUPPLY_LINES_MANAGE"
	// RightSupervisoryNodesManage allows administering the supervision hierarchy.
	RightSupervisoryNodesManage = "SUPERVISORY_NODES_MANAGE"
	// RightProcessingSchedulesManage allows administering schedules and periods.
	RightProcessingSchedulesManage = "PROCESSING_SCHEDULES_MANAGE"
	// RightSystemNotificationsManage allows administering system notifications.
	RightSystemNotificationsManage = "SYSTEM_NOTIFICATIONS_MANAGE"
	// RightUsersManage allows administering user accounts and their roles.
	RightUsersManage = "USERS_MANAGE"
	// RightRightsView allows viewing the system rights.
	RightRightsView = "RIGHTS_VIEW"
	// RightRightsManage allows editing right descriptions and removing
	// unused rights.
	RightRightsManage = "RIGHTS_MANAGE"
	// RightRolesManage allows administering roles.
	RightRolesManage = "ROLES_MANAGE"

	// RightRequisitionCreate is a supervision right exercised within a program.
	RightRequisitionCreate = "REQUISITION_CREATE"
	// RightRequisitionApprove is a supervision right exercised within a program.
	RightRequisitionApprove = "REQUISITION_APPROVE"

	// RightOrdersView is an order-fulfillment right exercised at a warehouse.
	RightOrdersView = "ORDERS_VIEW"
	// RightPodsManage is an order-fulfillment right exercised at a warehouse.
	RightPodsManage = "PODS_MANAGE"

	// RightReportsView is an order-report right.
	RightReportsView = "REPORTS_VIEW"
)
