package services

import (
	"context"
	"fmt"
	"strings"

	"salestracker/errors"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// groupCheckConcurrency bounds parallel group existence lookups per request.
const groupCheckConcurrency = 4

// EligibleUsers is the set of users an aggregation may count. An
// unrestricted set means no user filter is applied at all.
type EligibleUsers struct {
	Restricted bool
	UserIDs    []uint
}

// AllUsers is the unrestricted set.
func AllUsers() EligibleUsers {
	return EligibleUsers{}
}

// OnlyUsers restricts the set to ids.
func OnlyUsers(ids ...uint) EligibleUsers {
	return EligibleUsers{Restricted: true, UserIDs: lo.Uniq(ids)}
}

// Contains reports whether the user is eligible.
func (e EligibleUsers) Contains(id uint) bool {
	return !e.Restricted || lo.Contains(e.UserIDs, id)
}

// Empty reports whether the set is restricted to nobody.
func (e EligibleUsers) Empty() bool {
	return e.Restricted && len(e.UserIDs) == 0
}

// EligibleUserResolver turns group and role filters into an eligible set.
type EligibleUserResolver struct {
	directory Directory
}

func NewEligibleUserResolver(directory Directory) *EligibleUserResolver {
	return &EligibleUserResolver{directory: directory}
}

// Resolve validates that every group exists and that at least one user holds
// one of the roles, then returns users matching the group axis AND the role
// axis. With neither filter the result is unrestricted.
func (r *EligibleUserResolver) Resolve(ctx context.Context, groupIDs []uint, roles []string) (EligibleUsers, error) {
	if len(groupIDs) == 0 && len(roles) == 0 {
		return AllUsers(), nil
	}

	if err := r.checkGroups(ctx, groupIDs); err != nil {
		return EligibleUsers{}, err
	}

	var byGroup, byRole []uint
	if len(groupIDs) > 0 {
		ids, err := r.directory.FindUsersByGroups(ctx, groupIDs)
		if err != nil {
			return EligibleUsers{}, err
		}
		byGroup = ids
	}
	if len(roles) > 0 {
		ids, err := r.directory.FindUsersByRoles(ctx, roles)
		if err != nil {
			return EligibleUsers{}, err
		}
		if len(ids) == 0 {
			return EligibleUsers{}, errors.NotFound(errors.ResourceRole,
				fmt.Sprintf("No users hold any of the roles: %s", strings.Join(roles, ", ")))
		}
		byRole = ids
	}

	switch {
	case len(groupIDs) > 0 && len(roles) > 0:
		return OnlyUsers(lo.Intersect(byGroup, byRole)...), nil
	case len(groupIDs) > 0:
		return OnlyUsers(byGroup...), nil
	default:
		return OnlyUsers(byRole...), nil
	}
}

func (r *EligibleUserResolver) checkGroups(ctx context.Context, groupIDs []uint) error {
	if len(groupIDs) == 0 {
		return nil
	}
	found := make([]bool, len(groupIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(groupCheckConcurrency)
	for i, id := range groupIDs {
		i, id := i, id
		g.Go(func() error {
			ok, err := r.directory.GroupExists(gctx, id)
			if err != nil {
				return err
			}
			found[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, ok := range found {
		if !ok {
			return errors.NotFound(errors.ResourceGroup,
				fmt.Sprintf("Could not find a group for the provided id: %d", groupIDs[i]))
		}
	}
	return nil
}
