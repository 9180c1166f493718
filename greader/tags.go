package greader

import (
	"context"
	"net/url"
)

// Tags lists all labels and states known to the server.
func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	var list tagList
	if err := c.getJSON(ctx, apiPrefix+"/tag/list", nil, &list); err != nil {
		return nil, err
	}
	return list.Tags, nil
}

// RenameTag renames a user label. Both names may be given bare or as
// canonical stream IDs.
func (c *Client) RenameTag(ctx context.Context, oldName, newName string) error {
	if oldName == "" || newName == "" {
		return errMissingStream()
	}

	params := url.Values{}
	params.Set("s", LabelStream(oldName))
	params.Set("dest", LabelStream(newName))

	_, err := c.post(ctx, apiPrefix+"/rename-tag", params)
	return err
}

// DeleteTag removes a user label. Items and feeds carrying it are left in
// place, only the label itself disappears.
func (c *Client) DeleteTag(ctx context.Context, name string) error {
	if name == "" {
		return errMissingStream()
	}

	params := url.Values{}
	params.Set("s", LabelStream(name))

	_, err := c.post(ctx, apiPrefix+"/disable-tag", params)
	return err
}
