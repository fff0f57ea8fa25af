package gmsaas

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gmotion/pkg/logging"
)

// Coordinator sequences the multi-step instance operations. It is stateless:
// every transition is derived from the gmsaas response to the triggering
// call, never from an in-process record of what an instance looked like
// before. Genymotion SaaS is the only source of truth for instance state.
type Coordinator struct {
	exec   Executor
	settle time.Duration
	sleep  func(time.Duration) // swapped out in tests
}

// NewCoordinator creates a Coordinator on top of the given executor. The
// settle duration is the grace period granted to Genymotion SaaS before
// re-reading an instance whose ADB serial was not yet populated.
func NewCoordinator(exec Executor, settle time.Duration) *Coordinator {
	return &Coordinator{
		exec:   exec,
		settle: settle,
		sleep:  time.Sleep,
	}
}

// Start launches a new instance from the given recipe and returns the
// instance record. Depending on the gmsaas version the record is nested
// under an "instance" key or sits at the top level; both shapes are accepted.
func (c *Coordinator) Start(ctx context.Context, recipeUUID, instanceName string) (Object, error) {
	result, err := c.exec.Execute(ctx, "instances", "start", recipeUUID, instanceName)
	if err != nil {
		return nil, err
	}
	obj, ok := AsObject(result)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape from instances start: %T", result)
	}
	if instance, ok := obj.Child("instance"); ok {
		return instance, nil
	}
	return obj, nil
}

// Stop terminates the instance. The confirmation is keyed on the caller's
// uuid; the response payload shape does not matter.
func (c *Coordinator) Stop(ctx context.Context, instanceUUID string) error {
	_, err := c.exec.Execute(ctx, "instances", "stop", instanceUUID)
	return err
}

// ConnectADB attaches ADB to the instance and returns the ADB serial to use.
// A nil port lets gmsaas pick one.
//
// The adbconnect response nests the serial under "instance", but right after
// connecting it frequently still reads "Unknown" because the serial
// propagates through Genymotion SaaS with a small lag. In that case the
// coordinator waits the settle interval and re-reads the instance with
// `instances get`, whose response carries the serial at the top level. The
// two shapes are intentionally not normalized; the asymmetry is how the
// tool behaves. If the serial is still missing after the re-read, Unknown is
// returned rather than an error.
func (c *Coordinator) ConnectADB(ctx context.Context, instanceUUID string, adbPort *int) (string, error) {
	args := []string{"instances", "adbconnect", instanceUUID}
	if adbPort != nil {
		args = append(args, "--adb-serial-port", strconv.Itoa(*adbPort))
	}

	result, err := c.exec.Execute(ctx, args...)
	if err != nil {
		return "", err
	}

	serial := Unknown
	if obj, ok := AsObject(result); ok {
		if instance, ok := obj.Child("instance"); ok {
			serial = instance.Field("adb_serial")
		}
	}
	if serial != Unknown {
		return serial, nil
	}

	logging.Debug(gmsaasSubsystem, "ADB serial unknown after adbconnect, re-reading instance %s", instanceUUID)
	c.sleep(c.settle)

	details, err := c.exec.Execute(ctx, "instances", "get", instanceUUID)
	if err != nil {
		return "", err
	}
	if obj, ok := AsObject(details); ok {
		serial = obj.Field("adb_serial")
	}
	return serial, nil
}

// DisconnectADB detaches ADB from the instance. There is no prior-state
// check to fail on; a repeated disconnect succeeds as long as gmsaas does.
func (c *Coordinator) DisconnectADB(ctx context.Context, instanceUUID string) error {
	_, err := c.exec.Execute(ctx, "instances", "adbdisconnect", instanceUUID)
	return err
}
