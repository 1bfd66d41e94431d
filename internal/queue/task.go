package queue

type TaskType string

// TaskTypeGenerateReply asks a worker to produce a model response for one
// pending message. It is the only task type on the stream today; unknown
// types are rejected at parse time.
const TaskTypeGenerateReply TaskType = "generate_reply"
