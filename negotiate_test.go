package wgpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestAdapterResolvesAfterPumping(t *testing.T) {
	f, inst := newTestInstance(t)
	f.adapterFireOnPump = 10

	adapter, err := inst.RequestAdapter(nil)
	require.NoError(t, err)
	require.NotNil(t, adapter)
	assert.Equal(t, 10, f.pumps, "callback fires on the tenth pump, await must stop there")
}

func TestRequestAdapterSynchronousCallback(t *testing.T) {
	_, inst := newTestInstance(t)

	// Default fake fires inside the request call itself, before the first
	// pump. await must pick the result up on its first check.
	adapter, err := inst.RequestAdapter(nil)
	require.NoError(t, err)
	require.NotNil(t, adapter)
}

func TestRequestAdapterTimeout(t *testing.T) {
	f, inst := newTestInstance(t)
	f.adapterNeverFire = true

	adapter, err := inst.RequestAdapter(nil)
	require.Nil(t, adapter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), "want timeout kind, got %v", err)
	assert.False(t, errors.Is(err, ErrNegotiation), "timeout must not read as native rejection")
	assert.Greater(t, f.pumps, 1, "await must keep pumping until the deadline")
}

func TestRequestAdapterRejected(t *testing.T) {
	f, inst := newTestInstance(t)
	f.adapterStatus = 3
	f.adapterMessage = "no suitable backend"

	adapter, err := inst.RequestAdapter(nil)
	require.Nil(t, adapter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegotiation))
	assert.Contains(t, err.Error(), "no suitable backend")
}

func TestRequestAdapterOptionValidation(t *testing.T) {
	_, inst := newTestInstance(t)

	_, err := inst.RequestAdapter(&AdapterOptions{PowerPreference: "turbo"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = inst.RequestAdapter(&AdapterOptions{BackendType: "quartz"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	// Known symbols pass.
	adapter, err := inst.RequestAdapter(&AdapterOptions{
		PowerPreference: "high-performance",
		BackendType:     "vulkan",
		FeatureLevel:    "core",
	})
	require.NoError(t, err)
	require.NotNil(t, adapter)
}

func TestRequestDeviceRejected(t *testing.T) {
	f, inst := newTestInstance(t)
	adapter, err := inst.RequestAdapter(nil)
	require.NoError(t, err)

	f.deviceStatus = 2
	f.deviceMessage = "limits exceed adapter"
	device, err := adapter.RequestDevice(nil)
	require.Nil(t, device)
	assert.True(t, errors.Is(err, ErrNegotiation))
	assert.Contains(t, err.Error(), "limits exceed adapter")
}

func TestRequestDeviceCarriesQueue(t *testing.T) {
	_, _, device := newTestDevice(t)
	require.NotNil(t, device.Queue())
}

func TestLateCallbackIsIgnored(t *testing.T) {
	f, inst := newTestInstance(t)
	f.adapterNeverFire = true

	_, err := inst.RequestAdapter(nil)
	require.Error(t, err)
	staleInfo := f.pendingAdapter
	require.NotNil(t, staleInfo)

	// The request timed out and was dropped; the callback landing now must
	// be swallowed, and a fresh request must be unaffected by it.
	completeRequest(staleInfo.Userdata1, 1, 0xdead, "")

	f.adapterNeverFire = false
	adapter, err := inst.RequestAdapter(nil)
	require.NoError(t, err)
	assert.NotEqual(t, uintptr(0xdead), adapter.handle, "stale handle must not leak into a new request")
}

func TestPendingRequestResolveIsSingleShot(t *testing.T) {
	r := &pendingRequest{}
	r.resolve(1, 42, "first")
	r.resolve(2, 99, "second")

	done, status, handle, message := r.state()
	require.True(t, done)
	assert.Equal(t, uint32(1), status)
	assert.Equal(t, uintptr(42), handle)
	assert.Equal(t, "first", message)
}

func TestAdapterLimits(t *testing.T) {
	f, inst := newTestInstance(t)
	f.limits2D = 16384
	adapter, err := inst.RequestAdapter(nil)
	require.NoError(t, err)

	limits, err := adapter.Limits()
	require.NoError(t, err)
	assert.Equal(t, uint32(16384), limits.MaxTextureDimension2D)
}

func TestAdapterUseAfterRelease(t *testing.T) {
	_, inst := newTestInstance(t)
	adapter, err := inst.RequestAdapter(nil)
	require.NoError(t, err)

	require.NoError(t, adapter.Release())
	err = adapter.Release()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContract))

	_, err = adapter.RequestDevice(nil)
	assert.True(t, errors.Is(err, ErrContract))
}
