package engine

import "github.com/flywithpoints/flywithpoints/internal/catalog"

// AccessiblePrograms computes every program the balances can redeem
// through: direct airline balances plus one-hop transfers from credit
// cards. Unknown program ids are skipped. When several cards reach the
// same program the largest source balance wins, first seen on an exact
// tie; balances are never summed across cards. A direct balance is never
// displaced by a transfer route, whatever the amounts.
func (e *Engine) AccessiblePrograms(balances []PointBalance) []AccessibleProgram {
	out := []AccessibleProgram{}
	index := map[string]int{} // program id -> position in out

	for _, b := range balances {
		program, ok := e.cat.ProgramByID(b.ProgramID)
		if !ok {
			continue
		}

		switch program.Type {
		case catalog.TypeAirline:
			if _, seen := index[program.ID]; seen {
				continue
			}
			index[program.ID] = len(out)
			out = append(out, AccessibleProgram{
				ProgramID: program.ID,
				Program:   program,
				Balance:   b.Balance,
				Source:    SourceDirect,
			})

		case catalog.TypeCreditCard:
			for _, partner := range e.cat.TransferPartners(program.ID) {
				entry := AccessibleProgram{
					ProgramID: partner.ID,
					Program:   partner,
					Balance:   b.Balance,
					Source:    SourceTransfer,
					TransferFrom: &TransferSource{
						ProgramID:   program.ID,
						ProgramName: program.Name,
						Balance:     b.Balance,
					},
				}
				i, seen := index[partner.ID]
				if !seen {
					index[partner.ID] = len(out)
					out = append(out, entry)
					continue
				}
				if out[i].Source == SourceDirect {
					continue
				}
				if out[i].Balance < b.Balance {
					out[i] = entry
				}
			}
		}
	}
	return out
}
