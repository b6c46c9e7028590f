package worker

import "time"

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgPoolQueueFull   = "Worker pool queue full, dropping job"
)

// Log messages - mission worker
const (
	LogMsgFailedToLoadInProgress   = "Failed to load in-progress missions on startup"
	LogMsgSchedulingCompletion     = "Scheduling mission completion"
	LogMsgCompletingMission        = "Completing scheduled mission"
	LogMsgMissionAlreadySettled    = "Mission already settled, skipping"
	LogMsgMissionNotReadyRetrying  = "Mission not ready yet, rescheduling"
	LogMsgFailedToCompleteMission  = "Failed to complete mission"
	LogMsgUnreadableStartedPayload = "Ignoring mission started event with unreadable payload"
	LogMsgWorkerStarted            = "Mission worker started"
	LogMsgSweepRescheduled         = "Sweep rescheduled missions without a pending timer"
)

// Mission worker defaults
const (
	DefaultCompletionWorkers   = 4
	DefaultCompletionQueueSize = 256
	DefaultCompletionTimeout   = 30 * time.Second
	NotReadyRetryDelay         = time.Second
	DefaultSweepInterval       = time.Minute
)
