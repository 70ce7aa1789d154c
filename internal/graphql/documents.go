package graphql

// The fixed operation catalog. Each document is a named, complete GraphQL
// operation; the set below is the entire wire contract with the server.
// Documents are parse-validated by TestDocumentsParse so a malformed edit
// fails in CI rather than at the server.

// Operation pairs a document with the operation name sent in the request
// envelope.
type Operation struct {
	Name     string
	Document string
}

var (
	GetAllUsers = Operation{Name: "GetAllUsers", Document: `
query GetAllUsers {
  listUsers {
    id
    uuid
    name
    imagePath
    createdAt
  }
}`}

	GetUser = Operation{Name: "GetUser", Document: `
query GetUser($userUuid: String!) {
  getUser(userUuid: $userUuid) {
    id
    uuid
    name
    imagePath
    createdAt
  }
}`}

	GetUserChores = Operation{Name: "GetUserChores", Document: `
query GetUserChores($userId: Int!) {
  listChores(userId: $userId, activeOnly: true) {
    id
    uuid
    name
    description
    paymentType
    amountCents
    requiredDays
    active
    createdAt
  }
}`}

	GetAllChores = Operation{Name: "GetAllChores", Document: `
query GetAllChores {
  listChores {
    id
    uuid
    name
    description
    amountCents
    paymentType
    requiredDays
    active
    createdAt
    assignedUsers {
      id
      uuid
      name
      imagePath
    }
  }
}`}

	GetWeeklyChores = Operation{Name: "GetWeeklyChores", Document: `
query GetWeeklyChores($userId: Int!, $weekStartDate: Date!) {
  getWeeklyChoreCompletions(userId: $userId, weekStartDate: $weekStartDate) {
    id
    uuid
    userId
    choreId
    completedDate
    approved
    amountCents
    paidOutAt
    approvedAt
    approvedByAdminId
    createdAt
    updatedAt
    chore {
      id
      uuid
      name
      description
      amountCents
      paymentType
      requiredDays
    }
    user {
      id
      uuid
      name
    }
    notes {
      id
      uuid
      choreCompletionId
      noteText
      authorType
      authorUserId
      authorAdminId
      visibleToUser
      createdAt
    }
  }
}`}

	GetAllWeeklyCompletions = Operation{Name: "GetAllWeeklyCompletions", Document: `
query GetAllWeeklyCompletions($weekStartDate: Date!) {
  getAllWeeklyCompletions(weekStartDate: $weekStartDate) {
    id
    uuid
    userId
    choreId
    completedDate
    approved
    amountCents
    chore {
      id
      uuid
      name
    }
    user {
      id
      uuid
      name
    }
  }
}`}

	GetUnpaidTotals = Operation{Name: "GetUnpaidTotals", Document: `
query GetUnpaidTotals {
  getUnpaidTotals {
    user {
      id
      uuid
      name
    }
    amountCents
  }
}`}

	CreateChoreCompletion = Operation{Name: "CreateChoreCompletion", Document: `
mutation CreateChoreCompletion($completion: ChoreCompletionInput!) {
  createChoreCompletion(completion: $completion) {
    id
    uuid
    completedDate
    approved
    amountCents
  }
}`}

	ApproveChoreCompletion = Operation{Name: "ApproveChoreCompletion", Document: `
mutation ApproveChoreCompletion($completionUuid: String!, $adminId: Int!) {
  approveChoreCompletion(completionUuid: $completionUuid, adminId: $adminId) {
    id
    uuid
    approved
    approvedAt
    approvedByAdminId
  }
}`}

	DeleteChoreCompletion = Operation{Name: "DeleteChoreCompletion", Document: `
mutation DeleteChoreCompletion($completionUuid: String!) {
  deleteChoreCompletion(completionUuid: $completionUuid)
}`}

	AddChoreNote = Operation{Name: "AddChoreNote", Document: `
mutation AddChoreNote($note: ChoreCompletionNoteInput!) {
  createChoreCompletionNote(note: $note) {
    id
    uuid
    noteText
    authorType
    visibleToUser
    createdAt
  }
}`}

	CreateUser = Operation{Name: "CreateUser", Document: `
mutation CreateUser($user: UserInput!) {
  createUser(user: $user) {
    id
    uuid
    name
    imagePath
    createdAt
  }
}`}

	CreateChore = Operation{Name: "CreateChore", Document: `
mutation CreateChore($chore: ChoreInput!) {
  createChore(chore: $chore) {
    id
    uuid
    name
    description
    amountCents
    paymentType
    requiredDays
    active
    createdAt
  }
}`}

	UpdateChore = Operation{Name: "UpdateChore", Document: `
mutation UpdateChore($chore: ChoreInput!) {
  updateChore(chore: $chore) {
    id
    uuid
    name
    description
    amountCents
    paymentType
    requiredDays
    active
    createdAt
  }
}`}

	AssignChoreToUser = Operation{Name: "AssignChoreToUser", Document: `
mutation AssignChoreToUser($choreId: Int!, $userId: Int!) {
  assignUserToChore(choreId: $choreId, userId: $userId)
}`}

	UnassignUserFromChore = Operation{Name: "UnassignUserFromChore", Document: `
mutation UnassignUserFromChore($choreId: Int!, $userId: Int!) {
  unassignUserFromChore(choreId: $choreId, userId: $userId)
}`}

	MarkCompletionsAsPaid = Operation{Name: "MarkCompletionsAsPaid", Document: `
mutation MarkCompletionsAsPaid($userIds: [Int!]!) {
  markCompletionsAsPaid(userIds: $userIds)
}`}
)

// Catalog lists every operation for validation and diagnostics.
func Catalog() []Operation {
	return []Operation{
		GetAllUsers,
		GetUser,
		GetUserChores,
		GetAllChores,
		GetWeeklyChores,
		GetAllWeeklyCompletions,
		GetUnpaidTotals,
		CreateChoreCompletion,
		ApproveChoreCompletion,
		DeleteChoreCompletion,
		AddChoreNote,
		CreateUser,
		CreateChore,
		UpdateChore,
		AssignChoreToUser,
		UnassignUserFromChore,
		MarkCompletionsAsPaid,
	}
}
