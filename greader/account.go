package greader

import "context"

// UserInfo fetches the profile of the authenticated account.
func (c *Client) UserInfo(ctx context.Context) (*UserInfo, error) {
	var info UserInfo
	if err := c.getJSON(ctx, apiPrefix+"/user-info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
