// store/queries.go - Centralized SQL queries for DRY
package store

// Column lists for SELECT statements
const (
	demandColumns = `id, block, apartment, service_type_id, description, status, photo_path, created_at, resolved_at`
	demandTable   = `demands`

	scheduleColumns = `id, name, deadline, created_by, created_at`
	scheduleTable   = `schedules`

	scheduleItemColumns = `id, schedule_id, block, floor, apartment, service_type_id`
	scheduleItemTable   = `schedule_items`

	openingColumns = `id, kind, block, apartment, label, status, installed_at`
	openingTable   = `openings`

	paintingColumns = `id, block, floor, stage, updated_at`
	paintingTable   = `paintings`

	measurementColumns = `id, block, apartment, service_type_id, label, expected, actual, tolerance, measured_at`
	measurementTable   = `measurements`

	lotColumns = `id, code, description, quantity, block, status, received_at, created_at`
	lotTable   = `material_lots`

	employeeColumns = `id, name, role, active, created_at`
	employeeTable   = `employees`

	draftColumns = `id, block, apartment, service_type_id, description, created_at, applied`
	draftTable   = `demand_drafts`
)

// Service types
const (
	qServiceTypeSeed = `INSERT INTO service_types (name) VALUES (?) ON CONFLICT(name) DO NOTHING`
	qServiceTypeAll  = `SELECT id, name FROM service_types ORDER BY name`
	qServiceTypeByID = `SELECT id, name FROM service_types WHERE id = ?`
)

// Demands
const (
	qDemandsBase = `SELECT ` + demandColumns + ` FROM ` + demandTable

	qDemandByID = qDemandsBase + ` WHERE id = ?`

	qDemandInsert = `INSERT INTO ` + demandTable +
		` (block, apartment, service_type_id, description, photo_path)
		VALUES (?, ?, ?, ?, ?) RETURNING id, status, created_at`

	qDemandResolve = `UPDATE ` + demandTable +
		` SET status='Resolved', resolved_at=CURRENT_TIMESTAMP WHERE id=? AND status='Pending'`

	qDemandReopen = `UPDATE ` + demandTable +
		` SET status='Pending', resolved_at=NULL WHERE id=? AND status='Resolved'`

	qDemandSetPhoto = `UPDATE ` + demandTable + ` SET photo_path=? WHERE id=?`

	qDemandDelete = `DELETE FROM ` + demandTable + ` WHERE id = ?`
)

// Schedules
const (
	qScheduleInsert = `INSERT INTO ` + scheduleTable +
		` (name, deadline, created_by) VALUES (?, ?, ?) RETURNING id, created_at`

	qScheduleByID = `SELECT ` + scheduleColumns + ` FROM ` + scheduleTable + ` WHERE id = ?`

	qSchedulesAll = `SELECT ` + scheduleColumns + ` FROM ` + scheduleTable + ` ORDER BY deadline`

	qScheduleDelete = `DELETE FROM ` + scheduleTable + ` WHERE id = ?`

	qScheduleItemInsert = `INSERT INTO ` + scheduleItemTable +
		` (schedule_id, block, floor, apartment, service_type_id) VALUES (?, ?, ?, ?, ?) RETURNING id`

	qScheduleItemsBySchedule = `SELECT ` + scheduleItemColumns + ` FROM ` + scheduleItemTable +
		` WHERE schedule_id = ? ORDER BY id`
)

// Openings (doors and window frames)
const (
	qOpeningInsert = `INSERT INTO ` + openingTable +
		` (kind, block, apartment, label) VALUES (?, ?, ?, ?) RETURNING id, status`

	qOpeningByID = `SELECT ` + openingColumns + ` FROM ` + openingTable + ` WHERE id = ?`

	qOpeningInstall = `UPDATE ` + openingTable +
		` SET status='Installed', installed_at=CURRENT_TIMESTAMP WHERE id=? AND status='Pending'`

	qOpeningDelete = `DELETE FROM ` + openingTable + ` WHERE id = ?`
)

// Paintings
const (
	qPaintingUpsert = `INSERT INTO ` + paintingTable +
		` (block, floor, stage) VALUES (?, ?, ?)
		ON CONFLICT(block, floor) DO UPDATE SET stage=excluded.stage, updated_at=CURRENT_TIMESTAMP`

	qPaintingsAll = `SELECT ` + paintingColumns + ` FROM ` + paintingTable + ` ORDER BY block, floor`

	qPaintingsByBlock = `SELECT ` + paintingColumns + ` FROM ` + paintingTable +
		` WHERE block = ? ORDER BY floor`
)

// Measurements
const (
	qMeasurementInsert = `INSERT INTO ` + measurementTable +
		` (block, apartment, service_type_id, label, expected, actual, tolerance)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id, measured_at`

	qMeasurementsAll = `SELECT ` + measurementColumns + ` FROM ` + measurementTable +
		` ORDER BY measured_at DESC`

	qMeasurementDelete = `DELETE FROM ` + measurementTable + ` WHERE id = ?`
)

// Material lots
const (
	qLotInsert = `INSERT INTO ` + lotTable +
		` (code, description, quantity, block) VALUES (?, ?, ?, ?) RETURNING id, status, created_at`

	qLotByID = `SELECT ` + lotColumns + ` FROM ` + lotTable + ` WHERE id = ?`

	qLotsAll = `SELECT ` + lotColumns + ` FROM ` + lotTable + ` ORDER BY created_at DESC`

	qLotReceive = `UPDATE ` + lotTable +
		` SET status='Received', received_at=CURRENT_TIMESTAMP WHERE id=? AND status='Ordered'`

	qLotApply = `UPDATE ` + lotTable + ` SET status='Applied' WHERE id=? AND status='Received'`

	qLotDelete = `DELETE FROM ` + lotTable + ` WHERE id = ?`
)

// Employees, assignments, ratings
const (
	qEmployeeInsert = `INSERT INTO ` + employeeTable +
		` (name, role) VALUES (?, ?) RETURNING id, active, created_at`

	qEmployeeByID = `SELECT ` + employeeColumns + ` FROM ` + employeeTable + ` WHERE id = ?`

	qEmployeesAll = `SELECT ` + employeeColumns + ` FROM ` + employeeTable + ` ORDER BY name`

	qEmployeeSetActive = `UPDATE ` + employeeTable + ` SET active=? WHERE id=?`

	qAssignmentInsert = `INSERT INTO assignments (employee_id, block, service_type_id)
		VALUES (?, ?, ?) RETURNING id, assigned_at`

	qAssignmentsByEmployee = `SELECT id, employee_id, block, service_type_id, assigned_at
		FROM assignments WHERE employee_id = ? ORDER BY assigned_at DESC`

	qRatingInsert = `INSERT INTO ratings (employee_id, score, note)
		VALUES (?, ?, ?) RETURNING id, rated_at`

	qRatingStats = `SELECT COALESCE(AVG(score), 0), COUNT(*) FROM ratings WHERE employee_id = ?`
)

// Demand drafts
const (
	qDraftUpsert = `INSERT INTO ` + draftTable +
		` (id, block, apartment, service_type_id, description) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`

	qDraftByID = `SELECT ` + draftColumns + ` FROM ` + draftTable + ` WHERE id = ?`

	qDraftsPending = `SELECT ` + draftColumns + ` FROM ` + draftTable +
		` WHERE applied = 0 ORDER BY created_at`

	qDraftMarkApplied = `UPDATE ` + draftTable + ` SET applied=1 WHERE id=?`
)

// Metrics
const (
	qMetricsDemands = `SELECT COUNT(*),
		COALESCE(SUM(CASE WHEN status = 'Pending' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN status = 'Resolved' THEN 1 ELSE 0 END), 0)
		FROM ` + demandTable

	qMetricsOpenings = `SELECT COUNT(*),
		COALESCE(SUM(CASE WHEN status = 'Installed' THEN 1 ELSE 0 END), 0)
		FROM ` + openingTable

	qMetricsPaintings = `SELECT COUNT(*),
		COALESCE(SUM(CASE WHEN stage = 'Finished' THEN 1 ELSE 0 END), 0)
		FROM ` + paintingTable

	qMetricsLots = `SELECT COUNT(*),
		COALESCE(SUM(CASE WHEN status != 'Ordered' THEN 1 ELSE 0 END), 0)
		FROM ` + lotTable

	qMetricsEmployees = `SELECT COUNT(*) FROM ` + employeeTable + ` WHERE active = 1`

	qMetricsSchedules = `SELECT COUNT(*) FROM ` + scheduleTable

	qMetricsDrafts = `SELECT COUNT(*) FROM ` + draftTable + ` WHERE applied = 0`
)
