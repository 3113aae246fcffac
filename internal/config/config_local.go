//go:build !gcloud

package config

func (c *TaskQueueConfig) Validate() error {
	return nil
}

func (c *TaskQueueConfig) Enabled() bool {
	return c.PrimindTasksURL != ""
}
