package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Direction selects which neighbor Neighbor looks up.
type Direction int

const (
	// Prev is the record immediately before the current one in its order.
	Prev Direction = iota
	// Next is the record immediately after the current one in its order.
	Next
)

// OrderTerm describes one column of a model's declared ordering together
// with the current record's value for that column. Models expose their
// ordering through an OrderTerms method and pass it to Neighbor.
type OrderTerm struct {
	Column string
	Desc   bool
	Value  any
}

// Neighbor finds the record adjacent to the one identified by terms and id
// in the total order the terms declare, with ascending id as the final
// tiebreak. It builds one condition per ordering prefix: all earlier
// columns equal to the record's values and the current column strictly
// beyond it (comparison flipped for descending columns), unions the
// conditions and takes the first row in the appropriately directed order.
// Scoped views compose by applying their conditions to tx beforehand.
//
// Returns false with no error when the record is already first or last.
func Neighbor(tx *gorm.DB, dir Direction, terms []OrderTerm, id uint, dest any) (bool, error) {
	terms = append(append([]OrderTerm{}, terms...), OrderTerm{Column: "id", Value: id})

	conds := make([]clause.Expression, 0, len(terms))
	for i, term := range terms {
		exprs := make([]clause.Expression, 0, i+1)
		for _, prev := range terms[:i] {
			exprs = append(exprs, clause.Eq{
				Column: clause.Column{Name: prev.Column},
				Value:  prev.Value,
			})
		}
		after := dir == Next
		if term.Desc {
			after = !after
		}
		col := clause.Column{Name: term.Column}
		if after {
			exprs = append(exprs, clause.Gt{Column: col, Value: term.Value})
		} else {
			exprs = append(exprs, clause.Lt{Column: col, Value: term.Value})
		}
		conds = append(conds, clause.And(exprs...))
	}

	q := tx.Where(clause.Or(conds...))
	for _, term := range terms {
		desc := term.Desc
		if dir == Prev {
			desc = !desc
		}
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: term.Column}, Desc: desc})
	}

	res := q.Limit(1).Find(dest)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
