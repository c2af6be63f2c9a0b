package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub-api/metrics"
	"github.com/volunteerhub/volunteerhub-api/models"
	"gorm.io/gorm"
)

// ParticipantKind discriminates the two kinds of conversation actors
type ParticipantKind string

const (
	ParticipantKindUser         ParticipantKind = "user"
	ParticipantKindOrganization ParticipantKind = "organization"
)

// ParticipantRef identifies a user or an organization taking part in a
// conversation. It is the only way participant and sender identity crosses
// the service boundary, so a caller can never produce the both-set or
// neither-set column states by hand.
type ParticipantRef struct {
	Kind ParticipantKind `json:"kind"`
	ID   string          `json:"id"`
}

// Validate checks the reference is well-formed
func (r ParticipantRef) Validate() error {
	if r.ID == "" {
		return &ValidationError{Reason: "participant id is required"}
	}
	if r.Kind != ParticipantKindUser && r.Kind != ParticipantKindOrganization {
		return &ValidationError{Reason: "participant kind must be user or organization"}
	}
	return nil
}

func (r ParticipantRef) key() string {
	return string(r.Kind) + ":" + r.ID
}

// Notifier is the realtime fan-out collaborator. Publishing is best-effort:
// the conversation service never fails an operation because a publish failed.
type Notifier interface {
	Publish(conversationID string, event string, payload interface{}) error
}

// UserSummary is the display form of a user participant
type UserSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image"`
	Bio   string  `json:"bio"`
}

// OrganizationSummary is the display form of an organization participant
type OrganizationSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Thumbnail *string `json:"thumbnail"`
}

// ParticipantList holds the resolved participants of a conversation
type ParticipantList struct {
	Users         []*UserSummary         `json:"users"`
	Organizations []*OrganizationSummary `json:"organizations"`
}

// MessageView is a message row resolved for display, with the sender's
// avatar denormalized onto it
type MessageView struct {
	ID                   string    `json:"id"`
	ConversationID       string    `json:"conversation_id"`
	Content              string    `json:"content"`
	MessageType          int       `json:"message_type"`
	CreatedDate          time.Time `json:"created_date"`
	SenderUserID         *string   `json:"sender_user_id"`
	SenderOrganizationID *string   `json:"sender_organization_id"`
	UserImage            *string   `json:"user_image"`
	OrganizationImage    *string   `json:"organization_image"`
}

// ConversationView is a conversation with its participants and full ordered
// message timeline
type ConversationView struct {
	ID            string                 `json:"id"`
	Subject       *string                `json:"subject"`
	Users         []*UserSummary         `json:"users"`
	Organizations []*OrganizationSummary `json:"organizations"`
	Messages      []*MessageView         `json:"messages"`
}

// ConversationsService manages conversation membership, authorization and
// message history. All state lives in the database; every call re-reads
// membership so ownership and participation changes are visible immediately.
type ConversationsService struct {
	DB       *gorm.DB
	Notifier Notifier
	Log      zerolog.Logger
}

//====================================================================================================
// Membership manager
//====================================================================================================

// CreateConversation creates a conversation and its initial participants in
// one transaction. A conversation with zero participants is never observable.
func (s *ConversationsService) CreateConversation(
	subject string,
	participants []ParticipantRef,
) (*models.Conversation, error) {

	// At least one participant is required at creation time. The creator is
	// never an implicit participant; callers must pass explicit refs.
	if len(participants) == 0 {
		return nil, &ValidationError{Reason: "at least one participant is required"}
	}

	// Reject duplicate (kind, id) pairs up front
	seen := map[string]bool{}
	for _, ref := range participants {
		if err := ref.Validate(); err != nil {
			return nil, err
		}
		if seen[ref.key()] {
			return nil, &ValidationError{Reason: "duplicate participant: " + ref.ID}
		}
		seen[ref.key()] = true
	}

	// Create the conversation and every participant row atomically
	conversation := models.Conversation{
		Subject:     optionalString(subject),
		CreatedDate: time.Now().UTC(),
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&conversation).Error; err != nil {
			return err
		}
		for _, ref := range participants {
			row := participantRow(conversation.ID, ref)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storageError(err)
	}

	metrics.ConversationsCreated.Inc()
	return &conversation, nil
}

// AddParticipant adds a user or organization to an existing conversation.
// The actor must already be a participant, or own an organization that is.
func (s *ConversationsService) AddParticipant(
	actorID string,
	conversationID string,
	ref ParticipantRef,
) (*models.Participant, error) {

	// The conversation must exist
	conversation, err := s.getConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, &NotFoundError{Resource: "conversation", ID: conversationID}
	}

	if err := ref.Validate(); err != nil {
		return nil, err
	}

	// Authorization runs before any mutation
	ok, err := s.CanAddParticipant(actorID, conversationID)
	if err := s.authorize(ok, err, "you are not a participant in this conversation"); err != nil {
		return nil, err
	}

	// Check membership first so duplicate adds fail deterministically
	exists, err := s.isParticipant(conversationID, ref)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &ConflictError{Reason: "already a participant in this conversation"}
	}

	// Insert the row. Two racing adds can both pass the check above; the
	// unique index decides the loser, which is reported as the same conflict.
	row := participantRow(conversationID, ref)
	if err := s.DB.Create(&row).Error; err != nil {
		if dup, checkErr := s.isParticipant(conversationID, ref); checkErr == nil && dup {
			return nil, &ConflictError{Reason: "already a participant in this conversation"}
		}
		return nil, storageError(err)
	}

	metrics.ParticipantsAdded.Inc()
	return &row, nil
}

// ListParticipants returns every participant of a conversation resolved to
// display attributes. This is a pure read; read access is enforced by the
// caller's access path, not re-checked here.
func (s *ConversationsService) ListParticipants(conversationID string) (*ParticipantList, error) {

	conversation, err := s.getConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, &NotFoundError{Resource: "conversation", ID: conversationID}
	}

	var rows []*models.Participant
	err = s.DB.
		Where("conversation_id = ?", conversationID).
		Find(&rows).
		Error
	if err != nil {
		return nil, storageError(err)
	}

	userIDs := []string{}
	orgIDs := []string{}
	for _, row := range rows {
		if row.UserID.Valid {
			userIDs = append(userIDs, row.UserID.String)
		}
		if row.OrganizationID.Valid {
			orgIDs = append(orgIDs, row.OrganizationID.String)
		}
	}

	users, err := s.loadUserSummaries(userIDs)
	if err != nil {
		return nil, err
	}
	orgs, err := s.loadOrganizationSummaries(orgIDs)
	if err != nil {
		return nil, err
	}

	list := &ParticipantList{
		Users:         []*UserSummary{},
		Organizations: []*OrganizationSummary{},
	}
	for _, id := range userIDs {
		if summary, ok := users[id]; ok {
			list.Users = append(list.Users, summary)
		}
	}
	for _, id := range orgIDs {
		if summary, ok := orgs[id]; ok {
			list.Organizations = append(list.Organizations, summary)
		}
	}
	return list, nil
}

//====================================================================================================
// Authorization guard
//====================================================================================================

// CanActAsOrganization determines whether the actor may act on behalf of the
// organization. Only the organization's creator may. The predicate is
// re-evaluated from the database on every call, never cached, because
// ownership can change between requests.
func (s *ConversationsService) CanActAsOrganization(actorID, organizationID string) (bool, error) {
	var organization models.Organization
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("id = ?", organizationID).
		First(&organization).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, storageError(err)
	}
	return organization.CreatorID == actorID, nil
}

// CanAddParticipant determines whether the actor may add participants to the
// conversation: they must participate directly, or own an organization that
// participates. Fails closed: storage errors yield false.
func (s *ConversationsService) CanAddParticipant(actorID, conversationID string) (bool, error) {
	ownedOrgs := s.DB.
		Model(&models.Organization{}).
		Select("id").
		Where("deleted_date IS NULL").
		Where("creator_id = ?", actorID)

	var count int64
	err := s.DB.
		Model(&models.Participant{}).
		Where("conversation_id = ?", conversationID).
		Where("user_id = ? OR organization_id IN (?)", actorID, ownedOrgs).
		Count(&count).
		Error
	if err != nil {
		return false, storageError(err)
	}
	return count > 0, nil
}

// authorize is the single failure contract for every mutating entry point.
// A predicate error fails closed: the operation is denied, never permitted.
func (s *ConversationsService) authorize(ok bool, err error, reason string) error {
	if err != nil {
		s.Log.Warn().Err(err).Msg("authorization predicate failed, denying")
		return &AuthorizationError{Reason: reason}
	}
	if !ok {
		return &AuthorizationError{Reason: reason}
	}
	return nil
}

//====================================================================================================
// History aggregator
//====================================================================================================

// SendMessage validates the sender's membership, persists the message, and
// fans it out to realtime subscribers of the conversation topic. The
// database write is the source of truth; the publish is best-effort and
// never rolls the message back.
func (s *ConversationsService) SendMessage(
	actorID string,
	conversationID string,
	sender ParticipantRef,
	content string,
	messageType int,
) (*MessageView, error) {

	conversation, err := s.getConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, &NotFoundError{Resource: "conversation", ID: conversationID}
	}

	if err := sender.Validate(); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, &ValidationError{Reason: "message content is required"}
	}
	if messageType != models.MessageTypeText && messageType != models.MessageTypeImage {
		return nil, &ValidationError{Reason: "unknown message type"}
	}

	// A user may only send as themselves, or as an organization they created
	if sender.Kind == ParticipantKindUser {
		if sender.ID != actorID {
			return nil, &AuthorizationError{Reason: "you cannot send messages as another user"}
		}
	} else {
		ok, err := s.CanActAsOrganization(actorID, sender.ID)
		if err := s.authorize(ok, err, "you are not the creator of this organization"); err != nil {
			return nil, err
		}
	}

	// The sender must be a participant of the conversation
	isMember, err := s.isParticipant(conversationID, sender)
	if err := s.authorize(isMember, err, "sender is not a participant in this conversation"); err != nil {
		return nil, err
	}

	message := models.Message{
		ConversationID: conversationID,
		Content:        content,
		MessageType:    messageType,
		CreatedDate:    time.Now().UTC(),
	}
	if sender.Kind == ParticipantKindUser {
		message.SenderUserID = sql.NullString{Valid: true, String: sender.ID}
	} else {
		message.SenderOrganizationID = sql.NullString{Valid: true, String: sender.ID}
	}
	if err := s.DB.Create(&message).Error; err != nil {
		return nil, storageError(err)
	}
	metrics.MessagesSent.Inc()

	// Resolve the sender's avatar for the display view
	view := &MessageView{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		Content:        message.Content,
		MessageType:    message.MessageType,
		CreatedDate:    message.CreatedDate,
	}
	if sender.Kind == ParticipantKindUser {
		view.SenderUserID = &sender.ID
		users, err := s.loadUserSummaries([]string{sender.ID})
		if err == nil {
			if summary, ok := users[sender.ID]; ok {
				view.UserImage = summary.Image
			}
		}
	} else {
		view.SenderOrganizationID = &sender.ID
		orgs, err := s.loadOrganizationSummaries([]string{sender.ID})
		if err == nil {
			if summary, ok := orgs[sender.ID]; ok {
				view.OrganizationImage = summary.Thumbnail
			}
		}
	}

	// Fan out without blocking the caller. The message is already durable.
	go s.publishMessage(view)

	return view, nil
}

// publishMessage pushes a message event to the realtime collaborator.
// Failures are logged and counted, never retried.
func (s *ConversationsService) publishMessage(view *MessageView) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Publish(view.ConversationID, "incoming-message", view); err != nil {
		metrics.PublishFailures.Inc()
		s.Log.Warn().
			Err(err).
			Str("conversation_id", view.ConversationID).
			Msg("failed to publish message event")
	}
}

// GetConversationsForUser assembles every conversation the user participates
// in directly, with participants and the ordered message timeline.
func (s *ConversationsService) GetConversationsForUser(userID string) ([]*ConversationView, error) {
	var ids []string
	err := s.DB.
		Model(&models.Participant{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("conversation_id", &ids).
		Error
	if err != nil {
		return nil, storageError(err)
	}
	return s.assembleConversations(ids)
}

// GetConversationsForOrganization assembles every conversation the
// organization participates in. The actor must be the organization's creator.
func (s *ConversationsService) GetConversationsForOrganization(
	actorID string,
	organizationID string,
) ([]*ConversationView, error) {

	ok, err := s.CanActAsOrganization(actorID, organizationID)
	if err := s.authorize(ok, err, "you are not the creator of this organization"); err != nil {
		return nil, err
	}

	var ids []string
	err = s.DB.
		Model(&models.Participant{}).
		Where("organization_id = ?", organizationID).
		Distinct().
		Pluck("conversation_id", &ids).
		Error
	if err != nil {
		return nil, storageError(err)
	}
	return s.assembleConversations(ids)
}

// assembleConversations builds display views for the given conversation IDs:
// deduplicated participants plus messages ordered by creation time, ties
// broken by identifier so the timeline is stable across reads.
func (s *ConversationsService) assembleConversations(ids []string) ([]*ConversationView, error) {

	views := []*ConversationView{}
	if len(ids) == 0 {
		return views, nil
	}

	var conversations []*models.Conversation
	err := s.DB.
		Where("id IN ?", ids).
		Order("created_date ASC, id ASC").
		Find(&conversations).
		Error
	if err != nil {
		return nil, storageError(err)
	}

	var participants []*models.Participant
	err = s.DB.
		Where("conversation_id IN ?", ids).
		Find(&participants).
		Error
	if err != nil {
		return nil, storageError(err)
	}

	var messages []*models.Message
	err = s.DB.
		Where("conversation_id IN ?", ids).
		Order("created_date ASC, id ASC").
		Find(&messages).
		Error
	if err != nil {
		return nil, storageError(err)
	}

	// Collect every user and organization referenced as a participant or a
	// message sender, and resolve them in two queries
	userIDs := []string{}
	orgIDs := []string{}
	for _, p := range participants {
		if p.UserID.Valid {
			userIDs = append(userIDs, p.UserID.String)
		}
		if p.OrganizationID.Valid {
			orgIDs = append(orgIDs, p.OrganizationID.String)
		}
	}
	for _, m := range messages {
		if m.SenderUserID.Valid {
			userIDs = append(userIDs, m.SenderUserID.String)
		}
		if m.SenderOrganizationID.Valid {
			orgIDs = append(orgIDs, m.SenderOrganizationID.String)
		}
	}
	users, err := s.loadUserSummaries(userIDs)
	if err != nil {
		return nil, err
	}
	orgs, err := s.loadOrganizationSummaries(orgIDs)
	if err != nil {
		return nil, err
	}

	byConversation := map[string]*ConversationView{}
	for _, conversation := range conversations {
		view := &ConversationView{
			ID:            conversation.ID,
			Subject:       nullableString(conversation.Subject),
			Users:         []*UserSummary{},
			Organizations: []*OrganizationSummary{},
			Messages:      []*MessageView{},
		}
		byConversation[conversation.ID] = view
		views = append(views, view)
	}

	for _, p := range participants {
		view, ok := byConversation[p.ConversationID]
		if !ok {
			continue
		}
		if p.UserID.Valid {
			if summary, ok := users[p.UserID.String]; ok {
				view.Users = append(view.Users, summary)
			}
		}
		if p.OrganizationID.Valid {
			if summary, ok := orgs[p.OrganizationID.String]; ok {
				view.Organizations = append(view.Organizations, summary)
			}
		}
	}

	for _, m := range messages {
		view, ok := byConversation[m.ConversationID]
		if !ok {
			continue
		}
		view.Messages = append(view.Messages, s.assembleMessage(m, users, orgs))
	}

	return views, nil
}

// assembleMessage maps a message row to its display record. A row violating
// the sender invariant (both or neither sender column set) is degraded to a
// senderless message rather than failing the whole conversation list.
func (s *ConversationsService) assembleMessage(
	m *models.Message,
	users map[string]*UserSummary,
	orgs map[string]*OrganizationSummary,
) *MessageView {

	view := &MessageView{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Content:        m.Content,
		MessageType:    m.MessageType,
		CreatedDate:    m.CreatedDate,
	}

	if m.SenderUserID.Valid == m.SenderOrganizationID.Valid {
		integrity := &DataIntegrityError{Reason: "message sender must be exactly one of user or organization"}
		s.Log.Warn().
			Err(integrity).
			Str("message_id", m.ID).
			Msg("degrading message to senderless")
		return view
	}

	if m.SenderUserID.Valid {
		id := m.SenderUserID.String
		view.SenderUserID = &id
		if summary, ok := users[id]; ok {
			view.UserImage = summary.Image
		}
	} else {
		id := m.SenderOrganizationID.String
		view.SenderOrganizationID = &id
		if summary, ok := orgs[id]; ok {
			view.OrganizationImage = summary.Thumbnail
		}
	}
	return view
}

//====================================================================================================
// Candidate queries
//====================================================================================================

// VolunteersNotInConversation returns users that could still be added to the
// conversation, excluding the actor themselves
func (s *ConversationsService) VolunteersNotInConversation(
	actorID string,
	conversationID string,
) ([]*UserSummary, error) {

	memberUsers := s.DB.
		Model(&models.Participant{}).
		Select("user_id").
		Where("conversation_id = ?", conversationID).
		Where("user_id IS NOT NULL")

	var rows []*models.User
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("id != ?", actorID).
		Where("id NOT IN (?)", memberUsers).
		Find(&rows).
		Error
	if err != nil {
		return nil, storageError(err)
	}

	summaries := []*UserSummary{}
	for _, row := range rows {
		summaries = append(summaries, userSummary(row))
	}
	return summaries, nil
}

// OrganizationsNotInConversation returns organizations that could still be
// added to the conversation, excluding those created by the actor
func (s *ConversationsService) OrganizationsNotInConversation(
	actorID string,
	conversationID string,
) ([]*OrganizationSummary, error) {

	memberOrgs := s.DB.
		Model(&models.Participant{}).
		Select("organization_id").
		Where("conversation_id = ?", conversationID).
		Where("organization_id IS NOT NULL")

	var rows []*models.Organization
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("creator_id != ?", actorID).
		Where("id NOT IN (?)", memberOrgs).
		Find(&rows).
		Error
	if err != nil {
		return nil, storageError(err)
	}

	summaries := []*OrganizationSummary{}
	for _, row := range rows {
		summaries = append(summaries, organizationSummary(row))
	}
	return summaries, nil
}

//====================================================================================================
// Internals
//====================================================================================================

// getConversation loads a conversation, returning nil when it doesn't exist
func (s *ConversationsService) getConversation(id string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := s.DB.
		Where("id = ?", id).
		First(&conversation).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError(err)
	}
	return &conversation, nil
}

// isParticipant checks whether the referenced user or organization already
// participates in the conversation
func (s *ConversationsService) isParticipant(conversationID string, ref ParticipantRef) (bool, error) {
	query := s.DB.
		Model(&models.Participant{}).
		Where("conversation_id = ?", conversationID)
	if ref.Kind == ParticipantKindUser {
		query = query.Where("user_id = ?", ref.ID)
	} else {
		query = query.Where("organization_id = ?", ref.ID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, storageError(err)
	}
	return count > 0, nil
}

// IsUserParticipant reports whether the user may attach to the conversation's
// realtime room: either directly or through an organization they created
func (s *ConversationsService) IsUserParticipant(conversationID, userID string) (bool, error) {
	return s.CanAddParticipant(userID, conversationID)
}

func (s *ConversationsService) loadUserSummaries(ids []string) (map[string]*UserSummary, error) {
	summaries := map[string]*UserSummary{}
	if len(ids) == 0 {
		return summaries, nil
	}
	var rows []*models.User
	err := s.DB.
		Where("id IN ?", ids).
		Find(&rows).
		Error
	if err != nil {
		return nil, storageError(err)
	}
	for _, row := range rows {
		summaries[row.ID] = userSummary(row)
	}
	return summaries, nil
}

func (s *ConversationsService) loadOrganizationSummaries(ids []string) (map[string]*OrganizationSummary, error) {
	summaries := map[string]*OrganizationSummary{}
	if len(ids) == 0 {
		return summaries, nil
	}
	var rows []*models.Organization
	err := s.DB.
		Where("id IN ?", ids).
		Find(&rows).
		Error
	if err != nil {
		return nil, storageError(err)
	}
	for _, row := range rows {
		summaries[row.ID] = organizationSummary(row)
	}
	return summaries, nil
}

func participantRow(conversationID string, ref ParticipantRef) models.Participant {
	row := models.Participant{
		ConversationID: conversationID,
		CreatedDate:    time.Now().UTC(),
	}
	if ref.Kind == ParticipantKindUser {
		row.UserID = sql.NullString{Valid: true, String: ref.ID}
	} else {
		row.OrganizationID = sql.NullString{Valid: true, String: ref.ID}
	}
	return row
}

func userSummary(row *models.User) *UserSummary {
	return &UserSummary{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Image: nullableString(row.Image),
		Bio:   row.Bio,
	}
}

func organizationSummary(row *models.Organization) *OrganizationSummary {
	return &OrganizationSummary{
		ID:        row.ID,
		Name:      row.Name,
		Thumbnail: nullableString(row.Thumbnail),
	}
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	v := value.String
	return &v
}

func optionalString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{Valid: true, String: value}
}
