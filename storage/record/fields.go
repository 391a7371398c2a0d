package record

// The remote record store speaks the frontend's camelCase field names;
// everything inside this repo uses the canonical snake_case names. The
// translation is a fixed bidirectional table per entity table;
// anything not listed passes through unchanged (id, time, days, ...).
var wireFields = map[string]map[string]string{
	TableStudents: {
		"first_name":     "firstName",
		"last_name":      "lastName",
		"parent_contact": "parentContact",
		"photo_url":      "photoUrl",
		"created_at":     "createdAt",
		"updated_at":     "updatedAt",
	},
	TableClasses: {
		"student_ids": "studentIds",
		"created_at":  "createdAt",
		"updated_at":  "updatedAt",
	},
	TableAssignments: {
		"class_id":   "classId",
		"due_date":   "dueDate",
		"created_at": "createdAt",
		"updated_at": "updatedAt",
	},
	TableGrades: {
		"student_id":     "studentId",
		"assignment_id":  "assignmentId",
		"submitted_date": "submittedDate",
	},
	TableAttendance: {
		"student_id": "studentId",
	},
	TableLessonPlans: {
		"class_id":   "classId",
		"created_at": "createdAt",
		"updated_at": "updatedAt",
	},
}

var canonicalFields = invertFieldMaps(wireFields)

func invertFieldMaps(maps map[string]map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string, len(maps))
	for table, m := range maps {
		inv := make(map[string]string, len(m))
		for canonical, wire := range m {
			inv[wire] = canonical
		}
		out[table] = inv
	}
	return out
}

func renameKeys(rec Record, names map[string]string) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		if renamed, ok := names[k]; ok {
			k = renamed
		}
		out[k] = v
	}
	return out
}

// toWire translates a canonical record to the store's field names.
func toWire(table string, rec Record) Record {
	return renameKeys(rec, wireFields[table])
}

// toCanonical translates a store record to the canonical field names.
func toCanonical(table string, rec Record) Record {
	return renameKeys(rec, canonicalFields[table])
}
