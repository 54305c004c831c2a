package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jdoe/resume-builder/internal/types"
)

// DashboardSnapshot is everything the dashboard view needs in one fetch.
type DashboardSnapshot struct {
	User    *types.User
	Resumes []types.Resume
}

// Dashboard fetches the caller's profile and resume list concurrently.
// Either failure fails the snapshot; a 401 from either call expires the
// session as usual.
func (c *Client) Dashboard(ctx context.Context) (*DashboardSnapshot, error) {
	var snap DashboardSnapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := c.Profile(ctx)
		if err != nil {
			return err
		}
		snap.User = user
		return nil
	})
	g.Go(func() error {
		resumes, err := c.ListResumes(ctx)
		if err != nil {
			return err
		}
		snap.Resumes = resumes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
