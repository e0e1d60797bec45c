package app

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/raysh454/fhscan/internal/batch"
	"github.com/raysh454/fhscan/internal/logging"
	"github.com/raysh454/fhscan/internal/scanner"
)

// ErrJobNotFound is returned for unknown or expired job ids.
var ErrJobNotFound = errors.New("job not found")

type JobEventType string

const (
	JobEventStatus   JobEventType = "status"
	JobEventProgress JobEventType = "progress"
	JobEventResult   JobEventType = "result"
)

type JobEvent struct {
	JobID string       `json:"job_id"`
	Type  JobEventType `json:"type"`

	// For status changes
	Status JobStatus `json:"status,omitempty"`
	Error  string    `json:"error,omitempty"`

	// For progress
	Processed int `json:"processed,omitempty"`
	Total     int `json:"total,omitempty"`
}

type JobStatus string

const (
	JobPending  JobStatus = "pending"
	JobRunning  JobStatus = "running"
	JobDone     JobStatus = "done"
	JobFailed   JobStatus = "failed"
	JobCanceled JobStatus = "canceled"
)

// Terminal reports whether the job has finished.
func (s JobStatus) Terminal() bool {
	return s == JobDone || s == JobFailed || s == JobCanceled
}

const jobEventBuffer = 16

// Job is one asynchronous batch scan. Values returned by the Orchestrator are
// snapshots; Events is shared and is closed once the job finishes.
type Job struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"` // "batch"
	Jurisdiction string    `json:"jurisdiction,omitempty"`
	Status       JobStatus `json:"status"`
	Error        string    `json:"error,omitempty"`
	Processed    int       `json:"processed"`
	Total        int       `json:"total"`
	StartedAt    time.Time `json:"started_at"`
	EndedAt      time.Time `json:"ended_at,omitzero"`

	Results []scanner.Summary `json:"results,omitempty"`

	Events chan JobEvent `json:"-"`
}

func (o *Orchestrator) emitJobEvent(jobID string, ev JobEvent) {
	o.jobsMu.Lock()
	job, ok := o.jobs[jobID]
	o.jobsMu.Unlock()
	if !ok || job == nil || job.Events == nil {
		return
	}

	// Non-blocking send; drop if buffer is full.
	select {
	case job.Events <- ev:
	default:
	}
}

// emitFinalEvent makes room for the terminal event by dropping the oldest
// buffered one. The job goroutine is the only sender.
func (o *Orchestrator) emitFinalEvent(job *Job, ev JobEvent) {
	for {
		select {
		case job.Events <- ev:
			return
		default:
		}
		select {
		case <-job.Events:
		default:
		}
	}
}

func (o *Orchestrator) updateJob(jobID string, fn func(*Job)) {
	o.jobsMu.Lock()
	defer o.jobsMu.Unlock()
	if j, ok := o.jobs[jobID]; ok {
		fn(j)
	}
}

// StartBatchJob scans items in the background. Progress is reported on the
// returned job's Events channel.
func (o *Orchestrator) StartBatchJob(items []batch.Item, jurisdiction string) (Job, error) {
	if err := o.checkBatchSize(len(items)); err != nil {
		return Job{}, err
	}
	jurisdiction = o.jurisdiction(jurisdiction)

	job := o.newJob("batch", jurisdiction, len(items))
	o.runJob(job, func(ctx context.Context) error {
		results, err := o.comps.Runner.Run(ctx, items, jurisdiction, func(done, total int) {
			o.updateJob(job.ID, func(j *Job) { j.Processed = done })
			o.emitJobEvent(job.ID, JobEvent{
				JobID:     job.ID,
				Type:      JobEventProgress,
				Processed: done,
				Total:     total,
			})
		})
		o.updateJob(job.ID, func(j *Job) { j.Results = results })
		return err
	})
	return o.snapshot(job.ID), nil
}

func (o *Orchestrator) newJob(kind, jurisdiction string, total int) *Job {
	o.pruneJobs()

	job := &Job{
		ID:           uuid.New().String(),
		Type:         kind,
		Jurisdiction: jurisdiction,
		Status:       JobPending,
		Total:        total,
		StartedAt:    time.Now().UTC(),
		Events:       make(chan JobEvent, jobEventBuffer),
	}

	o.jobsMu.Lock()
	o.jobs[job.ID] = job
	o.jobsMu.Unlock()

	o.emitJobEvent(job.ID, JobEvent{
		JobID:  job.ID,
		Type:   JobEventStatus,
		Status: JobPending,
	})
	return job
}

// runJob drives a job through running to a terminal status. work runs under
// a context canceled by CancelJob or Close.
func (o *Orchestrator) runJob(job *Job, work func(ctx context.Context) error) {
	jobCtx, cancel := context.WithCancel(o.ctx)
	o.jobsMu.Lock()
	o.jobCancels[job.ID] = cancel
	o.jobsMu.Unlock()

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer cancel()

		o.updateJob(job.ID, func(j *Job) { j.Status = JobRunning })
		o.emitJobEvent(job.ID, JobEvent{
			JobID:  job.ID,
			Type:   JobEventStatus,
			Status: JobRunning,
		})

		err := work(jobCtx)

		final := JobEvent{JobID: job.ID, Type: JobEventStatus}
		switch {
		case jobCtx.Err() != nil:
			final.Status = JobCanceled
			final.Error = jobCtx.Err().Error()
		case err != nil:
			final.Status = JobFailed
			final.Error = err.Error()
		default:
			final.Type = JobEventResult
			final.Status = JobDone
		}

		o.jobsMu.Lock()
		job.Status = final.Status
		job.Error = final.Error
		job.EndedAt = time.Now().UTC()
		delete(o.jobCancels, job.ID)
		o.jobsMu.Unlock()

		o.logger.Info("job finished",
			logging.Field{Key: "job_id", Value: job.ID},
			logging.Field{Key: "status", Value: string(final.Status)})

		// Close events channel so websocket loop can terminate cleanly
		o.emitFinalEvent(job, final)
		close(job.Events)
	}()
}

// CancelJob stops a running job. Canceling a finished job is a no-op.
func (o *Orchestrator) CancelJob(jobID string) error {
	o.jobsMu.Lock()
	_, ok := o.jobs[jobID]
	cancel := o.jobCancels[jobID]
	o.jobsMu.Unlock()
	if !ok {
		return ErrJobNotFound
	}
	if cancel != nil {
		cancel()
	}
	return nil
}

// GetJob returns a snapshot of the job.
func (o *Orchestrator) GetJob(jobID string) (Job, error) {
	o.jobsMu.Lock()
	defer o.jobsMu.Unlock()
	j, ok := o.jobs[jobID]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return copyJob(j), nil
}

// ListJobs returns snapshots of every retained job, newest first, without results.
func (o *Orchestrator) ListJobs() []Job {
	o.pruneJobs()

	o.jobsMu.Lock()
	out := make([]Job, 0, len(o.jobs))
	for _, j := range o.jobs {
		cp := copyJob(j)
		cp.Results = nil
		out = append(out, cp)
	}
	o.jobsMu.Unlock()

	sort.Slice(out, func(a, b int) bool {
		if out[a].StartedAt.Equal(out[b].StartedAt) {
			return out[a].ID < out[b].ID
		}
		return out[a].StartedAt.After(out[b].StartedAt)
	})
	return out
}

func (o *Orchestrator) snapshot(jobID string) Job {
	j, _ := o.GetJob(jobID)
	return j
}

func copyJob(j *Job) Job {
	cp := *j
	cp.Results = append([]scanner.Summary(nil), j.Results...)
	return cp
}

// pruneJobs forgets finished jobs older than the retention window.
func (o *Orchestrator) pruneJobs() {
	o.jobsMu.Lock()
	defer o.jobsMu.Unlock()
	if o.jobRetention <= 0 {
		return
	}
	cutoff := time.Now().UTC().Add(-o.jobRetention)
	for id, j := range o.jobs {
		if j.Status.Terminal() && !j.EndedAt.IsZero() && j.EndedAt.Before(cutoff) {
			delete(o.jobs, id)
		}
	}
}
