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

package resolving

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

const (
	unsupportedVersionWarning = "This DAO is not on version " + recovery.SupportedDAOVersion + ". This tool might not work as expected."
	versionCheckFailedWarning = "Could not verify the DAO version. This tool might not work as expected."
)

// checkVersion compares the DAO version with the supported one. It is detached
// from the caller: a superseded or cancelled resolution does not stop it.
func (r *Resolver) checkVersion(network *recovery.Network, admin recovery.Address) {
	r.checks.Add(1)
	go func() {
		defer r.checks.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.versionTimeout)
		defer cancel()

		log := r.log.WithField("admin", admin)
		enterprise, version, err := r.daoVersion(ctx, network, admin)
		if err != nil {
			log.WithError(err).Warn("failed to check dao version")
			r.notifier.Warn(versionCheckFailedWarning)
			return
		}

		log = log.WithFields(logrus.Fields{"enterprise": enterprise, "version": version})
		if version.String() != recovery.SupportedDAOVersion {
			log.WithError(recovery.Errorf(recovery.ErrVersionMismatch, "dao is on version %s", version)).
				Warn("unsupported dao version")
			r.setUnsupported(1)
			r.notifier.Warn(unsupportedVersionWarning)
			return
		}
		log.Infof("DAO %s is on version %s", enterprise, recovery.SupportedDAOVersion)
		r.setUnsupported(0)
	}()
}

func (r *Resolver) daoVersion(ctx context.Context, network *recovery.Network, admin recovery.Address) (recovery.Address, recovery.Version, error) {
	var cfg recovery.AdminConfig
	err := r.querier.SmartQuery(ctx, network, admin, recovery.ConfigQuery(), &cfg)
	if err != nil {
		return "", recovery.Version{}, recovery.Wrap(recovery.ErrVersionMismatch, err, "failed to query admin config")
	}
	if cfg.EnterpriseContract.Empty() {
		return "", recovery.Version{}, recovery.Errorf(recovery.ErrVersionMismatch, "admin config has no enterprise contract")
	}

	var info recovery.DAOInfo
	err = r.querier.SmartQuery(ctx, network, cfg.EnterpriseContract, recovery.DAOInfoQuery(), &info)
	if err != nil {
		return "", recovery.Version{}, recovery.Wrap(recovery.ErrVersionMismatch, err, "failed to query dao info")
	}
	return cfg.EnterpriseContract, info.DAOVersion, nil
}

func (r *Resolver) setUnsupported(v float64) {
	if r.unsupported != nil {
		r.unsupported.Set(v)
	}
}
