//
// Copyright 2025 Frontier3 Tech
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package api

import (
	"math/big"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

func NewBalance(amount *big.Int, decimals int32) Balance {
	if amount == nil {
		amount = new(big.Int)
	}
	return Balance{
		Amount:  amount.String(),
		Display: recovery.FormatUnits(amount, decimals),
	}
}

func MembershipToAPI(d recovery.MembershipDescriptor) ResponseMembership {
	return ResponseMembership{
		Kind:    d.Kind.String(),
		Address: d.Address.String(),
	}
}

func ClaimsToAPI(claims []recovery.Claim, decimals int32) []ResponseClaim {
	out := make([]ResponseClaim, 0, len(claims))
	for _, c := range claims {
		out = append(out, ResponseClaim{
			ID:        c.ID,
			Amount:    NewBalance(c.Amount, decimals),
			ReleaseAt: c.ReleaseAt.String(),
			Timestamp: c.ReleaseAt.Timestamp,
			Height:    c.ReleaseAt.Height,
		})
	}
	return out
}

func StakeToAPI(contract, user recovery.Address, s recovery.StakeSnapshot, decimals int32) ResponseStake {
	return ResponseStake{
		Contract:         contract.String(),
		User:             user.String(),
		Staked:           NewBalance(s.TotalAmount(), decimals),
		Pending:          NewBalance(s.PendingAmount(), decimals),
		Claimable:        NewBalance(s.ClaimableAmount(), decimals),
		PendingClaims:    ClaimsToAPI(s.Pending, decimals),
		ReleasableClaims: ClaimsToAPI(s.Claimable, decimals),
	}
}

func SubmissionToAPI(s recovery.Submission, decimals int32) ResponseSubmission {
	res := ResponseSubmission{
		ID:        s.ID.String(),
		Kind:      string(s.Kind),
		Contract:  s.Contract.String(),
		Sender:    s.Sender.String(),
		TxHash:    s.TxHash,
		Status:    string(s.Status),
		Error:     s.Error,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Amount != nil {
		b := NewBalance(s.Amount, decimals)
		res.Amount = &b
	}
	return res
}
