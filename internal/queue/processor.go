package queue

import (
	"context"
	"log"
	"sync"
	"time"

	"tourbook/internal/mail"
)

const (
	// MaxRetries is the maximum number of automatic retries for failed deliveries.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
)

// Processor delivers queued email through an SMTP sender.
type Processor struct {
	queue        *MemoryQueue
	sender       mail.Sender
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new email delivery processor.
func NewProcessor(queue *MemoryQueue, sender mail.Sender, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		sender:      sender,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Email processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Email processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log.Printf("Worker %d started", id)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				log.Printf("Worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(job)
	}
}

func (p *Processor) processJob(job EmailJob) {
	log.Printf("Sending email to %s (attempt %d)", job.Message.To, job.RetryCount+1)

	if err := p.sender.Send(job.Message); err != nil {
		log.Printf("Email delivery to %s failed: %v", job.Message.To, err)
		p.handleFailure(job)
		return
	}

	log.Printf("Email delivered to %s", job.Message.To)
}

func (p *Processor) handleFailure(job EmailJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		log.Printf("Max retries reached for email to %s, dropping message %q", job.Message.To, job.Message.Subject)
		return
	}

	// Calculate exponential backoff delay
	delay := RetryDelay * time.Duration(1<<uint(job.RetryCount-1))
	log.Printf("Retrying email to %s in %v (attempt %d/%d)", job.Message.To, delay, job.RetryCount+1, MaxRetries)

	// Schedule retry with delay. Uses shutdownCh instead of ctx to allow
	// in-flight retries to complete during graceful shutdown.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay, dropping email to %s", job.Message.To)
		case <-time.After(delay):
			if err := p.queue.enqueueJob(job); err != nil {
				log.Printf("Failed to re-enqueue email to %s: %v", job.Message.To, err)
			}
		}
	}()
}
