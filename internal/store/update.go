package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// updateChanged applies column assignments to the single row selected by
// cond, reproducing document-store update semantics: the row is read
// first and only columns whose value actually differs are written. A
// missing row yields Matched 0; an identical update yields Matched 1,
// Modified 0 and issues no UPDATE at all.
func updateChanged(ctx context.Context, db *gorm.DB, model interface{}, cond string, arg interface{}, fields map[string]interface{}) (UpdateResult, error) {
	var current map[string]interface{}
	err := db.WithContext(ctx).Model(model).Where(cond, arg).Take(&current).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return UpdateResult{}, nil
	}
	if err != nil {
		return UpdateResult{}, err
	}

	changed := make(map[string]interface{}, len(fields))
	for col, val := range fields {
		if !sameValue(current[col], val) {
			changed[col] = val
		}
	}

	res := UpdateResult{Matched: 1}
	if len(changed) == 0 {
		return res, nil
	}

	upd := db.WithContext(ctx).Model(model).Where(cond, arg).Updates(changed)
	if upd.Error != nil {
		return UpdateResult{}, upd.Error
	}
	res.Modified = upd.RowsAffected
	return res, nil
}

// sameValue compares a scanned column value with an incoming assignment.
// Values arrive with driver-dependent types, so the comparison goes
// through their string form.
func sameValue(current, incoming interface{}) bool {
	if current == nil {
		return incoming == nil || incoming == ""
	}
	return fmt.Sprintf("%v", current) == fmt.Sprintf("%v", incoming)
}
