package datanode

// Assignment is one contiguous run of block IDs bound to a single storage
// directory.
type Assignment struct {
	StorageDir string
	StartID    int64
	Count      int64
}

// BuildPlan splits a total block count across the storage directories in
// discovery order.
//
// Every directory receives floor(count/N) blocks; a nonzero remainder
// becomes one extra assignment on the first directory, continuing the ID
// cursor where the main pass left off. The ID cursor is threaded through the
// assignments explicitly, so the union of all assignments is exactly the
// contiguous range [startID, startID+count) with no overlap.
func BuildPlan(storageDirs []string, count, startID int64) []Assignment {
	n := int64(len(storageDirs))
	if n == 0 || count <= 0 {
		return nil
	}

	perDir := count / n
	cursor := startID

	var plan []Assignment
	if perDir > 0 {
		for _, dir := range storageDirs {
			plan = append(plan, Assignment{StorageDir: dir, StartID: cursor, Count: perDir})
			cursor += perDir
		}
	}

	if rem := count % n; rem > 0 {
		plan = append(plan, Assignment{StorageDir: storageDirs[0], StartID: cursor, Count: rem})
	}

	return plan
}
